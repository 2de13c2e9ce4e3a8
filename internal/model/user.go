package model

// User represents a registered account.
type User struct {
	ID           int64  `json:"id_usuario"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// CredentialsRequest is the body of both registration and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// UserCreatedResponse is the payload of POST /usuarios/cadastro.
type UserCreatedResponse struct {
	Message string `json:"mensagem"`
	User    User   `json:"usuarioCriado"`
}

// LoginResponse is the payload of POST /usuarios/login.
type LoginResponse struct {
	Message string `json:"mensagem"`
	Token   string `json:"token"`
}
