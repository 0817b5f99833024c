package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleTech  = "TECH"
	RoleAdmin = "ADMIN"
)

// Onboarding checkpoints a freshly registered tech walks through.
// The stored status is the last step completed; empty means not started.
const (
	OnboardingProfileSaved = "PROFILE_SAVED"
	OnboardingMenuSaved    = "MENU_SAVED"
	OnboardingComplete     = "COMPLETE"
)
