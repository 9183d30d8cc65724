package trace

import (
	"bufio"
	"fmt"
	"os"
)

// WriteFile writes the trace as a fixed-width table to a log file,
// overwriting any previous contents. The layout matches the historical
// loadbalancer_log.txt format.
func (t *SimulationTrace) WriteFile(path string, header RunHeader) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating trace log %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing trace log %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "Load Balancer Simulation Log")
	fmt.Fprintf(w, "Servers: %d, Cycles: %d\n", header.Servers, header.Cycles)
	fmt.Fprintln(w, "Cycle    | Servers | Queue | Processed | System Util | Queue Util")
	fmt.Fprintln(w, "---------|---------|-------|-----------|-------------|-----------")
	for _, rec := range t.Records {
		fmt.Fprintf(w, "Cycle %5d | Servers: %2d | Queue: %4d | Processed: %6d | System Util: %5.1f%% | Queue Util: %5.1f%%\n",
			rec.Cycle, rec.Servers, rec.QueueLen, rec.Processed,
			rec.SystemUtilization, rec.QueueUtilization)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing trace log %s: %w", path, err)
	}
	return nil
}
