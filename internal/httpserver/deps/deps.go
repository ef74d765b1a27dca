package deps

import (
	"time"

	"github.com/homegrid/homegrid/internal/logger"
	"github.com/homegrid/homegrid/internal/session"
	"github.com/homegrid/homegrid/internal/sources/bootstrap"
	redisstore "github.com/homegrid/homegrid/internal/store/redis"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time    // for testing, defaults to time.Now
	AllowedHosts   []string            // Host headers allowed to access the API
	AllowedCIDRS   []string            // IPs allowed to access ops endpoints
	TrustProxy     bool                // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Controller     *session.Controller // document owner + edit session state machine
	Store          *redisstore.Store   // durable persistence gateway (used by ops checks)
	Bootstrap      *bootstrap.Loader   // bundled default config (reset endpoint)
	ImportMaxBytes int64               // upload size cap for config import
}
