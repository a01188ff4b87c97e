package consts

const (
	ApplicationName    = "Blog Album Server"
	ApplicationVersion = "3.0"
)

const (
	// MaxUploadSizeMB 图片最大上传限制 (MB)
	MaxUploadSizeMB = 10

	// DefaultAlbumPageSize 相册列表默认分页大小
	DefaultAlbumPageSize = 20

	// DefaultBoardPageSize 留言板列表默认分页大小
	DefaultBoardPageSize = 50

	// MaxPageSize 分页大小上限，防止单次查询拖垮数据库
	MaxPageSize = 100

	// MaxNicknameLength 留言昵称最大长度（按字符计）
	MaxNicknameLength = 50

	// MaxContentLength 留言内容最大长度（按字符计）
	MaxContentLength = 500
)

// AllowedImageExtensions 允许上传的图片扩展名（小写比较）。
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// AllowedImageMimeTypes 允许上传的图片 MIME 类型。
var AllowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}
