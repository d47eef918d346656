package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack"
)

const octetStream = "application/octet-stream"

var log = logging.MustGetLogger("huffd/handler")

type CodecHandler struct {
	maxBody int64
}

func NewCodecHandler(maxBody int64) *CodecHandler {
	return &CodecHandler{maxBody: maxBody}
}

type codesResp struct {
	Distinct int                `json:"distinct"`
	Total    uint64             `json:"total"`
	Bits     uint64             `json:"bits"`
	Codes    *huffpack.CodeBook `json:"codes"`
}

func (h *CodecHandler) Compress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	artifact, err := huffpack.Compress(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, artifact)
}

func (h *CodecHandler) Decompress(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	data, err := huffpack.Decompress(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, data)
}

func (h *CodecHandler) Codes(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	table, cb, err := huffpack.Analyze(body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, codesResp{
		Distinct: cb.Len(),
		Total:    table.Total(),
		Bits:     cb.EncodedBits(table),
		Codes:    cb,
	})
}

func (h *CodecHandler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (h *CodecHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, huffpack.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, huffpack.ErrMalformedStream):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, huffpack.ErrFrequencyOverflow):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
