package domain

// Credential is the fixed identity used for one diagnostic run.
type Credential struct {
	Username string
	Password string
	Email    string
}

// LoginRequest is the body of POST /auth/login/.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register/.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credential) Login() LoginRequest {
	return LoginRequest{Username: c.Username, Password: c.Password}
}

func (c Credential) Register() RegisterRequest {
	return RegisterRequest{Username: c.Username, Email: c.Email, Password: c.Password}
}

// AccessToken is an opaque bearer credential. It has no expiry handling.
type AccessToken string
