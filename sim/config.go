package sim

import "fmt"

// Config groups construction-time parameters for a LoadBalancer.
type Config struct {
	InitialServers int     // servers created at start (within [MinServers, MaxServers])
	MinServers     int     // pool size floor (must be >= 1)
	MaxServers     int     // pool size ceiling
	ServerCapacity int     // concurrent request slots per server
	QueueCapacity  int     // admission queue bound
	ScaleThreshold float64 // mean-utilization fraction that triggers scale-up
}

// DefaultConfig returns the configuration the original simulator ran with:
// five servers of capacity 5, a pool of [1, 10], a 500-slot queue, and an
// 0.8 utilization threshold.
func DefaultConfig() Config {
	return Config{
		InitialServers: 5,
		MinServers:     1,
		MaxServers:     10,
		ServerCapacity: 5,
		QueueCapacity:  500,
		ScaleThreshold: 0.8,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MinServers < 1 {
		return fmt.Errorf("MinServers must be >= 1, got %d", c.MinServers)
	}
	if c.MaxServers < c.MinServers {
		return fmt.Errorf("MaxServers must be >= MinServers (%d), got %d", c.MinServers, c.MaxServers)
	}
	if c.InitialServers < c.MinServers || c.InitialServers > c.MaxServers {
		return fmt.Errorf("InitialServers must be in [%d, %d], got %d", c.MinServers, c.MaxServers, c.InitialServers)
	}
	if c.ServerCapacity <= 0 {
		return fmt.Errorf("ServerCapacity must be > 0, got %d", c.ServerCapacity)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("QueueCapacity must be > 0, got %d", c.QueueCapacity)
	}
	if c.ScaleThreshold <= 0.0 || c.ScaleThreshold > 1.0 {
		return fmt.Errorf("ScaleThreshold must be in (0, 1], got %.2f", c.ScaleThreshold)
	}
	return nil
}
