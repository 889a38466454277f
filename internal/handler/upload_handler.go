package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UploadHandler 文件上传处理器
type UploadHandler struct {
	ingestService *service.IngestService
	maxBytes      int64
	logger        *logrus.Logger
}

// NewUploadHandler 创建文件上传处理器
func NewUploadHandler(ingestService *service.IngestService, maxBytes int64, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		ingestService: ingestService,
		maxBytes:      maxBytes,
		logger:        logger,
	}
}

// Upload 上传一个或多个文件并导入为新批次
// 表单字段: batch_name, files
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, utils.Response{
				Code:    http.StatusRequestEntityTooLarge,
				Message: fmt.Sprintf("上传内容超过%s限制", humanize.IBytes(uint64(h.maxBytes))),
			})
			return
		}
		utils.BadRequest(c, "文件上传失败: "+err.Error())
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		utils.BadRequest(c, "请选择要上传的文件")
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			utils.BadRequest(c, "打开文件失败: "+err.Error())
			return
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			utils.BadRequest(c, fmt.Sprintf("读取文件%s失败: %v", header.Filename, err))
			return
		}
		files = append(files, service.UploadFile{Name: header.Filename, Content: content})
	}

	resp, err := h.ingestService.Ingest(c.Request.Context(), c.PostForm("batch_name"), files)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, fmt.Sprintf("已导入%d条记录", resp.Total), resp)
}
