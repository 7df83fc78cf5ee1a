package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/models"
)

// stubPage is a minimal page model recording how often it was opened.
type stubPage struct {
	inits   int
	lastMsg tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.lastMsg = msg
	return p, nil
}

func (p *stubPage) View() string { return "" }

// fakeAuth records sign-out calls.
type fakeAuth struct {
	service.AuthService

	logouts int
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

type fakeSettings struct {
	saved []models.Theme
}

func (f *fakeSettings) SaveTheme(_ context.Context, theme models.Theme) error {
	f.saved = append(f.saved, theme)
	return nil
}

func (f *fakeSettings) LoadTheme(context.Context) (models.Theme, error) {
	return models.ThemeLight, nil
}

func newTestRoot(startPage string, snap session.Snapshot) (RootModel, map[string]tea.Model, *fakeSettings) {
	pages := map[string]tea.Model{
		pageLogin:        &stubPage{},
		pageRegister:     &stubPage{},
		pageHome:         &stubPage{},
		pageProfile:      &stubPage{},
		pageLeaderboards: &stubPage{},
		pageManager:      &stubPage{},
		pageAdmin:        &stubPage{},
	}
	settings := &fakeSettings{}
	root := NewRootModel(context.Background(), pages, startPage, nil, settings, snap, models.ThemeLight)
	return root, pages, settings
}

func authedSnapshot(role models.Role) session.Snapshot {
	return session.Snapshot{
		Token:         "token",
		User:          models.User{FirstName: "Ada", Role: role},
		Authenticated: true,
	}
}

func updateRoot(t *testing.T, root RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	updated, cmd := root.Update(msg)
	next, ok := updated.(RootModel)
	require.True(t, ok)
	return next, cmd
}

func TestPagesForRole(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		want []string
	}{
		{
			name: "plain user",
			role: models.RoleUser,
			want: []string{pageHome, pageProfile, pageLeaderboards},
		},
		{
			name: "manager gets the dashboard",
			role: models.RoleManager,
			want: []string{pageHome, pageProfile, pageLeaderboards, pageManager},
		},
		{
			name: "admin gets everything",
			role: models.RoleAdmin,
			want: []string{pageHome, pageProfile, pageLeaderboards, pageManager, pageAdmin},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagesForRole(tt.role))
		})
	}
}

func TestRootModel_GatedNavigationIgnored(t *testing.T) {
	root, _, _ := newTestRoot(pageHome, authedSnapshot(models.RoleUser))

	root, _ = updateRoot(t, root, NavigateTo{Page: pageAdmin})
	assert.Equal(t, pageHome, root.currName)

	root, _ = updateRoot(t, root, NavigateTo{Page: pageManager})
	assert.Equal(t, pageHome, root.currName)

	root, _ = updateRoot(t, root, NavigateTo{Page: pageLeaderboards})
	assert.Equal(t, pageLeaderboards, root.currName)
}

func TestRootModel_ManagerDashboardSharedNotAdminPanel(t *testing.T) {
	root, _, _ := newTestRoot(pageHome, authedSnapshot(models.RoleManager))

	root, _ = updateRoot(t, root, NavigateTo{Page: pageManager})
	assert.Equal(t, pageManager, root.currName)

	root, _ = updateRoot(t, root, NavigateTo{Page: pageAdmin})
	assert.Equal(t, pageManager, root.currName)
}

func TestRootModel_UnauthenticatedSeesAuthPagesOnly(t *testing.T) {
	root, _, _ := newTestRoot(pageLogin, session.Snapshot{})

	root, _ = updateRoot(t, root, NavigateTo{Page: pageHome})
	assert.Equal(t, pageLogin, root.currName)

	root, _ = updateRoot(t, root, NavigateTo{Page: pageRegister})
	assert.Equal(t, pageRegister, root.currName)
}

func TestRootModel_SessionLossForcesSignIn(t *testing.T) {
	root, pages, _ := newTestRoot(pageProfile, authedSnapshot(models.RoleUser))

	root, _ = updateRoot(t, root, SessionChanged{Snap: session.Snapshot{}})

	assert.Equal(t, pageLogin, root.currName)
	assert.False(t, root.snap.Authenticated)
	assert.Equal(t, 1, pages[pageLogin].(*stubPage).inits)
}

func TestRootModel_SessionLossLeavesRegisterAlone(t *testing.T) {
	root, _, _ := newTestRoot(pageRegister, session.Snapshot{})

	root, _ = updateRoot(t, root, SessionChanged{Snap: session.Snapshot{}})

	assert.Equal(t, pageRegister, root.currName)
}

func TestRootModel_AuthResultOpensHome(t *testing.T) {
	root, pages, _ := newTestRoot(pageLogin, session.Snapshot{})

	root, _ = updateRoot(t, root, AuthResult{User: models.User{Role: models.RoleUser}})

	assert.Equal(t, pageHome, root.currName)
	assert.True(t, root.snap.Authenticated)
	assert.Equal(t, 1, pages[pageHome].(*stubPage).inits)
}

func TestRootModel_AuthFailureStaysOnLogin(t *testing.T) {
	root, pages, _ := newTestRoot(pageLogin, session.Snapshot{})

	root, _ = updateRoot(t, root, AuthResult{Err: assert.AnError})

	assert.Equal(t, pageLogin, root.currName)
	assert.False(t, root.snap.Authenticated)
	// The failure is delegated to the login page so it can show the error.
	assert.Equal(t, AuthResult{Err: assert.AnError}, pages[pageLogin].(*stubPage).lastMsg)
}

func TestRootModel_ExpiredSessionSignsOut(t *testing.T) {
	auth := &fakeAuth{}
	pages := map[string]tea.Model{pageLogin: &stubPage{}, pageHome: &stubPage{}}
	root := NewRootModel(context.Background(), pages, pageHome, auth, &fakeSettings{}, authedSnapshot(models.RoleUser), models.ThemeLight)

	updated, cmd := root.Update(sessionExpiredMsg{})
	_, ok := updated.(RootModel)
	require.True(t, ok)

	require.NotNil(t, cmd, "a 401 from any page action must sign the session out")
	_ = cmd()
	assert.Equal(t, 1, auth.logouts)
}

func TestRootModel_ExpiredSessionIgnoredWhenSignedOut(t *testing.T) {
	auth := &fakeAuth{}
	pages := map[string]tea.Model{pageLogin: &stubPage{}}
	root := NewRootModel(context.Background(), pages, pageLogin, auth, &fakeSettings{}, session.Snapshot{}, models.ThemeLight)

	_, cmd := root.Update(sessionExpiredMsg{})

	assert.Nil(t, cmd)
	assert.Zero(t, auth.logouts)
}

func TestRootModel_ThemeTogglePersistsAndBroadcasts(t *testing.T) {
	root, pages, settings := newTestRoot(pageHome, authedSnapshot(models.RoleUser))

	root, cmd := updateRoot(t, root, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)

	msg := cmd()
	require.Equal(t, themeChangedMsg{theme: models.ThemeDark}, msg)
	assert.Equal(t, []models.Theme{models.ThemeDark}, settings.saved)

	root, _ = updateRoot(t, root, msg)
	assert.Equal(t, models.ThemeDark, root.theme)
	assert.Equal(t, msg, pages[pageProfile].(*stubPage).lastMsg)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot(pageHome, authedSnapshot(models.RoleUser))

	root, cmd := updateRoot(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, root.quitByUser)
}
