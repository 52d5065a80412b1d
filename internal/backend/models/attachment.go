package models

type FileAttachment struct {
	ID         int64  `json:"id"`
	AppCode    string `json:"appCode"`
	BizCode    string `json:"bizCode"`
	FileCode   string `json:"fileCode"`
	FileName   string `json:"fileName"`
	FilePath   string `json:"filePath"`
	FileSize   string `json:"fileSize"`
	FileType   string `json:"fileType"`
	CreateTime string `json:"createTime"`
}
