package request

type RequestCodeRequest struct {
	Identifier string `json:"identifier" binding:"required,max=254"`
	Channel    string `json:"channel" binding:"required,oneof=PHONE EMAIL"`
}

type VerifyCodeRequest struct {
	Identifier string `json:"identifier" binding:"required,max=254"`
	Code       string `json:"code" binding:"required,numeric,min=4,max=10"`
}

type ResendStatusQuery struct {
	Identifier string `form:"identifier" binding:"required,max=254"`
}
