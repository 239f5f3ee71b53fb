package handler

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type authResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type identityResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
