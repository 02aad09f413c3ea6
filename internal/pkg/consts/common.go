package consts

const (
	// UserStatusActive / UserStatusAnonymized 账号状态
	UserStatusActive     int8 = 0
	UserStatusAnonymized int8 = 1
)

const (
	// ReservedUsernamePrefix 注销账号保留用户名前缀，注册时禁止使用
	ReservedUsernamePrefix = "anonymous"
)

const (
	// MaxImageSizeKB 图片大小上限 (KB)
	MaxImageSizeKB = 2048
)

// AllowedImageMimeTypes 允许上传的图片类型
var AllowedImageMimeTypes = map[string]struct{}{
	"image/jpg":     {},
	"image/jpeg":    {},
	"image/svg+xml": {},
	"image/gif":     {},
	"image/png":     {},
}

const (
	// AnonymousCounterTTLYears 注销序号的保留年限
	AnonymousCounterTTLYears = 10
)
