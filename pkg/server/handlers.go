package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/siteconfig"
)

// Headers and query parameters carrying the caller's ids
const (
	HeaderAccountID = "X-Account-Id"
	HeaderSiteID    = "X-Site-Id"
	QueryAccountID  = "accountId"
	QuerySiteID     = "siteId"

	keyAccountID = "account_id"
	keySiteID    = "site_id"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireIDs resolves accountId and siteId from headers or query and
// rejects the request when either is missing
func requireIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := firstNonEmpty(c.GetHeader(HeaderAccountID), c.Query(QueryAccountID))
		siteID := firstNonEmpty(c.GetHeader(HeaderSiteID), c.Query(QuerySiteID))
		if accountID == "" || siteID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing accountId or siteId"})
			return
		}
		c.Set(keyAccountID, accountID)
		c.Set(keySiteID, siteID)
		c.Next()
	}
}

func (s *Server) updateSiteConfig(c *gin.Context) {
	logger := logging.GetLogger("server")
	accountID, siteID := c.GetString(keyAccountID), c.GetString(keySiteID)

	patch, err := s.readPatch(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body", "details": err.Error()})
		return
	}

	updated, err := siteconfig.UpdateSite(c.Request.Context(), s.store, accountID, siteID, patch)
	if err != nil {
		logger.Error().Err(err).
			Str("request_id", GetRequestID(c.Request.Context())).
			Str("account_id", accountID).
			Str("site_id", siteID).
			Msg("Failed to update site configuration")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update site configuration",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "config": updated})
}

// readPatch decodes a JSON object body; an empty or null body yields the
// default patch
func (s *Server) readPatch(body io.Reader) (map[string]interface{}, error) {
	var raw []byte
	if body != nil {
		var err error
		if raw, err = io.ReadAll(body); err != nil {
			return nil, err
		}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return siteconfig.DefaultSitePatch(s.now()), nil
	}

	var patch map[string]interface{}
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, err
	}
	return patch, nil
}

func (s *Server) handlerStatus(c *gin.Context) {
	enabled, err := siteconfig.HandlerEnabled(c.Request.Context(), s.store, c.GetString(keyAccountID), c.GetString(keySiteID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read site configuration", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (s *Server) setHandler(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := siteconfig.SetHandlerEnabled(c.Request.Context(), s.store, c.GetString(keyAccountID), c.GetString(keySiteID), enabled)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site configuration", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"enabled": enabled})
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
