package admin

type ApiGroup struct {
	FaqApi
	UploadApi
}
