package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/models"
)

// RegisterModel is the Bubble Tea model for the account-creation page:
// first name, last name, email, password, and password confirmation.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	pal        palette
}

// NewRegisterModel creates a [RegisterModel] with all five inputs
// pre-configured; both password fields use masked echo.
func NewRegisterModel(ctx context.Context, auth service.AuthService, theme models.Theme) *RegisterModel {
	labels := []string{"first name", "last name", "email", "password", "repeat password"}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 64
		in.Width = 40
		if strings.Contains(label, "password") {
			in.CharLimit = 256
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: inputs,
		pal:    paletteFor(theme),
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AuthResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeTransportError(msg.Err)
		}
		return m, nil
	case themeChangedMsg:
		m.pal = paletteFor(msg.theme)
		return m, nil
	case SessionChanged:
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) submit() (tea.Model, tea.Cmd) {
	firstName := strings.TrimSpace(m.inputs[0].Value())
	lastName := strings.TrimSpace(m.inputs[1].Value())
	email := strings.TrimSpace(m.inputs[2].Value())
	pass := m.inputs[3].Value()
	repeat := m.inputs[4].Value()

	if firstName == "" || email == "" || pass == "" {
		m.errMsg = "first name, email and password are required"
		return m, nil
	}
	if pass != repeat {
		m.errMsg = "passwords do not match"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdRegister(models.Registration{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  pass,
	})
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	labels := []string{"First name ", "Last name  ", "Email      ", "Password   ", "Repeat     "}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.pal.errText.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.pal.title.Render("CREATE ACCOUNT"), strings.TrimRight(b.String(), "\n"),
		"enter: submit │ tab: next field │ esc: back to sign in")
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, reg)
		return AuthResult{Err: err, User: user}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
