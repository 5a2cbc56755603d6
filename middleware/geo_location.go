// File: middleware/geo_location.go
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"homigo/models"
	"homigo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextClientGeoKey is where the resolved client location lands in the
// gin context. Handlers thread it into match queries explicitly; the
// matching engine itself never reads it.
const ContextClientGeoKey = "clientGeo"

// clientGeo is the subset of the geolocation API response we keep.
type clientGeo struct {
	IP        string  `json:"ip"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// geoCacheTTL bounds how long a resolved IP location is reused.
const geoCacheTTL = 24 * time.Hour

// cachedGeo returns a previously resolved location for the IP from the
// session cache, or nil. A missing or unreachable cache is not an error.
func cachedGeo(ip string) *clientGeo {
	client := utils.SessionCacheClient
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	raw, err := client.Get(ctx, "geo:"+ip).Result()
	if err != nil || raw == "" {
		return nil
	}
	var geo clientGeo
	if err := json.Unmarshal([]byte(raw), &geo); err != nil {
		return nil
	}
	return &geo
}

// storeGeo caches a resolved location in the session cache; failures are
// logged and otherwise ignored.
func storeGeo(ip string, geo *clientGeo, logger *zap.Logger) {
	client := utils.SessionCacheClient
	if client == nil {
		return
	}
	payload, err := json.Marshal(geo)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, "geo:"+ip, payload, geoCacheTTL).Err(); err != nil {
		logger.Warn("Failed to cache geolocation", zap.String("ip", ip), zap.Error(err))
	}
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// getGeolocation resolves approximate coordinates for an IP via ipapi.co,
// caching results in the session cache. Private IPs and lookup failures
// yield nil.
func getGeolocation(ip string, logger *zap.Logger) *clientGeo {
	if geo := cachedGeo(ip); geo != nil {
		return geo
	}

	if isPrivateIP(ip) {
		return nil
	}

	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		logger.Warn("Failed to query geolocation API", zap.String("ip", ip), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Geolocation API returned non-OK status",
			zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return nil
	}

	var geo clientGeo
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		logger.Warn("Failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return nil
	}

	storeGeo(ip, &geo, logger)
	return &geo
}

// GeolocationMiddleware resolves an approximate client location and stashes
// it in the request context as a fallback for searches that carry no
// coordinates.
func GeolocationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		geo := getGeolocation(getClientIP(c), logger)
		if geo != nil && (geo.Latitude != 0 || geo.Longitude != 0) {
			c.Set(ContextClientGeoKey, models.NewGeoPoint(geo.Latitude, geo.Longitude))
		}
		c.Next()
	}
}

// ClientGeoFromContext returns the location resolved by
// GeolocationMiddleware, or nil.
func ClientGeoFromContext(c *gin.Context) *models.GeoPoint {
	v, ok := c.Get(ContextClientGeoKey)
	if !ok {
		return nil
	}
	geo, ok := v.(*models.GeoPoint)
	if !ok {
		return nil
	}
	return geo
}
