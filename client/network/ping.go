package network

import "slices"

// maxRTTSamples is the number of recent round trips the ping is averaged over.
const maxRTTSamples = 10

// rttWindow keeps the most recent round trip times in milliseconds.
type rttWindow struct {
	samples []int64
}

// add records a round trip and returns the average of the window with
// outliers removed.
func (w *rttWindow) add(rtt int64) float64 {
	w.samples = append(w.samples, rtt)
	if len(w.samples) > maxRTTSamples {
		w.samples = w.samples[len(w.samples)-maxRTTSamples:]
	}

	kept := removeOutlierRTTs(w.samples)
	if len(kept) == 0 {
		return 0
	}
	var sum int64
	for _, rtt := range kept {
		sum += rtt
	}
	return float64(sum) / float64(len(kept))
}

func (w *rttWindow) reset() {
	w.samples = nil
}

// removeOutlierRTTs drops round trips that are both above 20ms and more than
// twice the median.
func removeOutlierRTTs(rtts []int64) []int64 {
	median := medianRTT(rtts)
	result := make([]int64, 0, len(rtts))
	for _, rtt := range rtts {
		if rtt > 2*median && rtt > 20 {
			continue
		}
		result = append(result, rtt)
	}
	return result
}

func medianRTT(rtts []int64) int64 {
	if len(rtts) == 0 {
		return 0
	}
	sorted := slices.Clone(rtts)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
