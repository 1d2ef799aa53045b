package server

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VivekMane57/sectionize/pkg/sectionize"
	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
	"github.com/VivekMane57/sectionize/pkg/sectionize/output"
)

// noDataWarning is reported for documents without any extractable section.
const noDataWarning = "no structured data found"

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// FileResult is the outcome of one uploaded file.
type FileResult struct {
	FileName   string         `json:"file_name"`
	OutputName string         `json:"output_name,omitempty"`
	Structured *models.Output `json:"structured,omitempty"`
	Warning    string         `json:"warning,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message})
}

func (s *Server) health(c *gin.Context) {
	success(c, gin.H{"status": "ok"})
}

// transform handles POST /api/transform: every part named "files" is
// transformed and reported on its own.
func (s *Server) transform(c *gin.Context) {
	files, ok := s.uploads(c)
	if !ok {
		return
	}
	results := make([]FileResult, 0, len(files))
	for _, fh := range files {
		results = append(results, s.process(c, fh))
	}
	success(c, gin.H{"files": results})
}

// transformZip handles POST /api/transform/zip: the structured documents of
// all uploads are returned as one ZIP archive.
func (s *Server) transformZip(c *gin.Context) {
	files, ok := s.uploads(c)
	if !ok {
		return
	}
	var entries []output.BundleEntry
	for _, fh := range files {
		res := s.process(c, fh)
		if res.Structured == nil {
			continue
		}
		data, err := output.ToJSON(res.Structured, true)
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		entries = append(entries, output.BundleEntry{Name: res.OutputName, Data: data})
	}
	if len(entries) == 0 {
		errorResponse(c, http.StatusUnprocessableEntity, noDataWarning)
		return
	}

	var buf bytes.Buffer
	if err := output.WriteBundle(&buf, entries); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="structured_outputs.zip"`)
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

func (s *Server) uploads(c *gin.Context) ([]*multipart.FileHeader, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	form, err := c.MultipartForm()
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "expected a multipart upload: "+err.Error())
		return nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		errorResponse(c, http.StatusBadRequest, `no files uploaded in field "files"`)
		return nil, false
	}
	return files, true
}

func (s *Server) process(c *gin.Context, fh *multipart.FileHeader) FileResult {
	res := FileResult{FileName: fh.Filename}
	log := s.log.With(
		zap.String("request_id", c.GetString("request_id")),
		zap.String("file", fh.Filename),
	)

	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".xlsx", ".xlsm", ".json":
	default:
		res.Error = fmt.Sprintf("unsupported file type %q", filepath.Ext(fh.Filename))
		return res
	}

	f, err := fh.Open()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	doc, err := sectionize.LoadReader(fh.Filename, f, log)
	if err != nil {
		log.Warn("load failed", zap.Error(err))
		res.Error = err.Error()
		return res
	}
	out, found := s.pipeline.Transform(doc)
	if !found {
		res.Warning = noDataWarning
		return res
	}
	res.Structured = out
	res.OutputName = output.FileName(doc.DocumentName)
	return res
}
