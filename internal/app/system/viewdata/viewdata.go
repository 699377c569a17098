package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
	"github.com/kestrelworks/invdash/internal/domain/models"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings (from config)
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Sidebar navigation (empty for signed-out pages)
	Nav []NavItem

	// CSRF protection
	CSRFToken string // Token for form submission

	// Transient notification, set by handlers that popped one
	Notification *flash.Note
}

// siteName is set by Init from app config.
var siteName = models.DefaultSiteName

// Init sets the configured site name. Call once at startup from bootstrap.
func Init(name string) {
	if name != "" {
		siteName = name
	}
}

// sections is the fixed sidebar list.
var sections = []NavItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Products", Path: "/products"},
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    siteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.Role = u.Role
		vm.UserName = u.Name
		vm.Nav = navFor(vm.CurrentPath)
	}

	return vm
}

// navFor marks the section owning the current path as active.
func navFor(currentPath string) []NavItem {
	nav := make([]NavItem, len(sections))
	copy(nav, sections)
	for i := range nav {
		nav[i].Active = currentPath == nav[i].Path ||
			strings.HasPrefix(currentPath, nav[i].Path+"/")
	}
	return nav
}
