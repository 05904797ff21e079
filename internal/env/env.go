// Package env builds the environment the application process inherits.
package env

import (
	"sort"
	"strconv"
	"strings"

	"github.com/animotion/launchpad/internal/config"
)

// Variable names consumed by the AniMotion application.
const (
	VarAuthPass  = "AUTH_PASS"
	VarSecretKey = "SECRET_KEY"
	VarNgrokMode = "NGROK_MODE"
)

// Prepare maps the configured credentials onto the variables the
// application reads. It is a pure function of the config: calling it
// twice yields the same mapping with no accumulated state.
func Prepare(cfg config.Env) map[string]string {
	return map[string]string{
		VarAuthPass:  cfg.AuthPass,
		VarSecretKey: cfg.SecretKey,
		VarNgrokMode: strconv.FormatBool(cfg.NgrokMode),
	}
}

// Merge overlays the prepared variables onto a base environment in
// KEY=VALUE form (typically os.Environ()). A key present in both wins
// from the overlay; entries are never duplicated. The overlay is
// appended in sorted key order so the result is deterministic.
func Merge(base []string, overlay map[string]string) []string {
	merged := make([]string, 0, len(base)+len(overlay))
	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, shadowed := overlay[key]; shadowed {
				continue
			}
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overlay[k])
	}
	return merged
}
