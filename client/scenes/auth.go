package scenes

import (
	"github.com/cbodonnell/stackfall/client/fonts"
	"github.com/cbodonnell/stackfall/client/objects"
	"github.com/cbodonnell/stackfall/client/ui"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// AuthScene signs in or registers an account before joining the game server.
type AuthScene struct {
	*BaseScene

	onLogin         func(email, password string) error
	onRegister      func(email, password string) error
	onBack          func() error
	isRegistering   bool
	ui              *ebitenui.UI
	emailTextInput  *widget.TextInput
	email           string
	password        string
	confirmPassword string
	errMsg          string
}

type AuthSceneOptions struct {
	OnLogin    func(email, password string) error
	OnRegister func(email, password string) error
	// OnBack returns to the menu.
	OnBack func() error
}

var _ Scene = &AuthScene{}

func NewAuthScene(opts AuthSceneOptions) (Scene, error) {
	return &AuthScene{
		BaseScene:  NewBaseScene(objects.NewBaseObject("auth-root", nil)),
		onLogin:    opts.OnLogin,
		onRegister: opts.OnRegister,
		onBack:     opts.OnBack,
	}, nil
}

func (s *AuthScene) Init() error {
	s.renderUI()
	s.emailTextInput.Focus(true)
	return s.BaseScene.Init()
}

// validate returns the message to show for incomplete input.
func validate(isRegistering bool, email, password, confirmPassword string) string {
	if email == "" {
		return "Email is required."
	}
	if password == "" {
		return "Password is required."
	}
	if !isRegistering {
		return ""
	}
	if confirmPassword == "" {
		return "Confirm password is required."
	}
	if password != confirmPassword {
		return "Passwords do not match."
	}
	return ""
}

func (s *AuthScene) renderUI() {
	rootContainer := newColumn(110)

	emailTextInput := newTextInput("Email", false, func(text string) {
		s.email = text
	})
	emailTextInput.SetText(s.email)
	rootContainer.AddChild(emailTextInput)

	passwordTextInput := newTextInput("Password", true, func(text string) {
		s.password = text
	})
	passwordTextInput.SetText(s.password)
	rootContainer.AddChild(passwordTextInput)

	confirmPasswordTextInput := newTextInput("Confirm Password", true, func(text string) {
		s.confirmPassword = text
	})
	confirmPasswordTextInput.SetText(s.confirmPassword)

	toggleButtonText := "New User?"
	submitText := "Sign In"
	if s.isRegistering {
		toggleButtonText = "Existing User?"
		submitText = "Register"
		rootContainer.AddChild(confirmPasswordTextInput)
	}

	toggleRegisterContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	toggleRegisterLink := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(linkButtonImage),
		widget.ButtonOpts.Text(toggleButtonText, fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     textColor,
			Hover:    disabledColor,
			Disabled: disabledColor,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(5)),
		widget.ButtonOpts.TextPosition(widget.TextPositionEnd, widget.TextPositionEnd),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.isRegistering = !s.isRegistering
			s.renderUI()
		}),
	)
	toggleRegisterContainer.AddChild(toggleRegisterLink)

	submitHandler := func(args interface{}) {
		defer s.renderUI()
		email, password, confirmPassword := emailTextInput.GetText(), passwordTextInput.GetText(), confirmPasswordTextInput.GetText()
		if msg := validate(s.isRegistering, email, password, confirmPassword); msg != "" {
			s.errMsg = msg
			return
		}
		action, fallback := s.onLogin, "Failed to sign in. Please try again."
		if s.isRegistering {
			action, fallback = s.onRegister, "Failed to register. Please try again."
		}
		if err := action(email, password); err != nil {
			log.Error("Failed to authenticate: %v", err)
			if actionableErr, ok := err.(*ui.ActionableError); ok {
				s.errMsg = actionableErr.Message
			} else {
				s.errMsg = fallback
			}
		}
	}
	submitButton := newButton(submitText, func(args *widget.ButtonClickedEventArgs) {
		submitHandler(args)
	})

	buttonContainer := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(20, 0),
			widget.GridLayoutOpts.Stretch([]bool{false, true}, []bool{true}),
		)),
	)
	buttonContainer.AddChild(submitButton)
	buttonContainer.AddChild(toggleRegisterContainer)
	rootContainer.AddChild(buttonContainer)

	rootContainer.AddChild(newButton("Back", func(args *widget.ButtonClickedEventArgs) {
		if err := s.onBack(); err != nil {
			log.Error("Failed to return to menu: %v", err)
		}
	}))

	if s.errMsg != "" {
		rootContainer.AddChild(newLabel(s.errMsg, errorColor))
		s.errMsg = ""
	}

	emailTextInput.SubmitEvent.AddHandler(submitHandler)
	passwordTextInput.SubmitEvent.AddHandler(submitHandler)
	confirmPasswordTextInput.SubmitEvent.AddHandler(submitHandler)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
	s.emailTextInput = emailTextInput
}

func (s *AuthScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *AuthScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
