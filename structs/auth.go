package structs

// Roles stored on the customer row and mirrored into the session.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// RegisterForm is the registration form payload. The confirm-match check is
// the only password policy enforced.
type RegisterForm struct {
	Name            string `form:"name" validate:"required,min=2,max=100"`
	Email           string `form:"email" validate:"required,email"`
	Phone           string `form:"phone" validate:"required,min=6,max=20"`
	Address         string `form:"address" validate:"required,max=200"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginForm accepts a customer name or an email address as the username.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
