package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lbsim/lbsim/sim"
	"github.com/lbsim/lbsim/sim/trace"
	"github.com/lbsim/lbsim/sim/workload"
)

var (
	// CLI flags for the simulation run
	seed           int64   // Seed for random request generation
	cycles         int64   // Total simulation time (in cycles)
	logLevel       string  // Log verbosity level
	numServers     int     // Initial server count
	minServers     int     // Pool size floor
	maxServers     int     // Pool size ceiling (0 = 2x initial servers)
	serverCapacity int     // Concurrent request slots per server
	queueCapacity  int     // Admission queue bound (0 = 100x initial servers)
	threshold      float64 // Scaling utilization threshold (fraction)
	workloadPath   string  // Optional YAML workload spec
	blockedIPs     []string // Origin addresses blocked from the start
	logFile        string  // Periodic statistics log destination
	logInterval    int64   // Cycles between statistics records
	statusInterval int64   // Cycles between console status displays
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lbsim",
	Short: "Discrete-time load balancer simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the load balancer simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// The historical driver clamped out-of-range inputs to defaults
		// rather than refusing to run.
		if numServers < 1 || numServers > 50 {
			logrus.Warnf("Invalid number of servers %d. Using default value of 5.", numServers)
			numServers = 5
		}
		if cycles < 100 || cycles > 50000 {
			logrus.Warnf("Invalid simulation time %d. Using default value of 10000.", cycles)
			cycles = 10000
		}
		if maxServers == 0 {
			maxServers = numServers * 2
		}
		if queueCapacity == 0 {
			queueCapacity = numServers * 100
		}

		spec := workload.DefaultSpec()
		if workloadPath != "" {
			spec, err = workload.LoadWorkloadSpec(workloadPath)
			if err != nil {
				logrus.Fatalf("unable to read workload spec; %v", err)
			}
		}
		if cmd.Flags().Changed("seed") || spec.Seed == 0 {
			spec.Seed = seed
		}

		gen, err := workload.NewGenerator(spec, cycles)
		if err != nil {
			logrus.Fatalf("unable to build workload generator; %v", err)
		}

		cfg := sim.Config{
			InitialServers: numServers,
			MinServers:     minServers,
			MaxServers:     maxServers,
			ServerCapacity: serverCapacity,
			QueueCapacity:  queueCapacity,
			ScaleThreshold: threshold,
		}
		lb, err := sim.NewLoadBalancer(cfg)
		if err != nil {
			logrus.Fatalf("unable to construct load balancer; %v", err)
		}
		for _, ip := range blockedIPs {
			lb.Block(ip)
		}

		logrus.Infof("Starting simulation with %d servers, pool [%d, %d], queue capacity %d, threshold %.2f, %d cycles, seed %d",
			numServers, minServers, maxServers, queueCapacity, threshold, cycles, spec.Seed)

		burst := spec.InitialBurst
		if burst == 0 {
			burst = queueCapacity
		}
		seedQueue(lb, gen, burst)

		tr := trace.NewSimulationTrace(logInterval)
		runLoop(lb, gen, tr, cycles)

		header := trace.RunHeader{Servers: numServers, Cycles: cycles}
		if err := tr.WriteFile(logFile, header); err != nil {
			logrus.Errorf("unable to write statistics log: %v", err)
		} else {
			logrus.Infof("Statistics log saved as %s", logFile)
		}

		printSummary(lb, cycles)
	},
}

// seedQueue fills the admission queue with an initial burst of requests.
func seedQueue(lb *sim.LoadBalancer, gen *workload.Generator, n int) {
	logrus.Infof("Generating %d initial requests...", n)
	for i := 0; i < n; i++ {
		if !lb.Submit(gen.Next()) {
			logrus.Warnf("Could not add request %d - queue may be full", i+1)
			break
		}
	}
	logrus.Infof("Queue initialized with %d requests", lb.QueueSize())
}

// runLoop drives the simulation cycle by cycle: trickle arrivals in, advance
// the system, and sample statistics on the configured intervals.
func runLoop(lb *sim.LoadBalancer, gen *workload.Generator, tr *trace.SimulationTrace, cycles int64) {
	for cycle := int64(1); cycle <= cycles; cycle++ {
		if req := gen.MaybeArrival(cycle); req != nil {
			if lb.Submit(req) {
				logrus.Debugf("[cycle %d] New request added from %s", cycle, req.ClientIP)
			}
		}

		lb.ProcessCycle()

		if tr.ShouldSample(cycle) || cycle == cycles {
			tr.Record(trace.CycleRecord{
				Cycle:             cycle,
				Servers:           lb.ActiveServerCount(),
				QueueLen:          lb.QueueSize(),
				Processed:         lb.TotalProcessed(),
				SystemUtilization: lb.SystemUtilization(),
				QueueUtilization:  lb.QueueUtilization(),
				Overloaded:        lb.IsOverloaded(),
			})
		}
		if cycle%statusInterval == 0 || cycle == cycles {
			displayStatus(lb, cycle)
		}
	}
}

// displayStatus prints the periodic console status block.
func displayStatus(lb *sim.LoadBalancer, cycle int64) {
	fmt.Printf("\n=== Cycle %d Status ===\n", cycle)
	fmt.Printf("Active Servers: %d\n", lb.ActiveServerCount())
	fmt.Printf("Queue Size: %d\n", lb.QueueSize())
	fmt.Printf("Total Processed: %d\n", lb.TotalProcessed())
	fmt.Printf("System Utilization: %.1f%%\n", lb.SystemUtilization())
	fmt.Printf("Queue Utilization: %.1f%%\n", lb.QueueUtilization())
	if lb.IsOverloaded() {
		fmt.Println("*** SYSTEM OVERLOADED ***")
	}
}

// printSummary prints the end-of-run report and aggregate metrics.
func printSummary(lb *sim.LoadBalancer, cycles int64) {
	summary := trace.Summary{
		Cycles:                cycles,
		TotalProcessed:        lb.TotalProcessed(),
		AverageProcessingTime: lb.AverageProcessingTime(),
		SystemUtilization:     lb.SystemUtilization(),
		QueueLen:              lb.QueueSize(),
		Discarded:             lb.Discarded(),
		ServerStats:           lb.ServerStats(),
	}
	fmt.Println()
	fmt.Print(summary)
	fmt.Println()
	lb.Metrics.Print()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
	runCmd.Flags().Int64Var(&cycles, "cycles", 10000, "Total simulation time in cycles (100-50000)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Load balancer configs
	runCmd.Flags().IntVar(&numServers, "servers", 5, "Initial number of servers (1-50)")
	runCmd.Flags().IntVar(&minServers, "min-servers", 1, "Minimum number of servers to maintain")
	runCmd.Flags().IntVar(&maxServers, "max-servers", 0, "Maximum number of servers (0 = 2x initial)")
	runCmd.Flags().IntVar(&serverCapacity, "server-capacity", 5, "Concurrent request capacity per server")
	runCmd.Flags().IntVar(&queueCapacity, "queue-capacity", 0, "Admission queue capacity (0 = 100x initial servers)")
	runCmd.Flags().Float64Var(&threshold, "threshold", 0.8, "Scaling utilization threshold (0-1)")
	runCmd.Flags().StringSliceVar(&blockedIPs, "block-ip", nil, "Origin addresses blocked from the start")

	// Workload configs
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "YAML workload spec (default: built-in traffic shape)")

	// Reporting configs
	runCmd.Flags().StringVar(&logFile, "log-file", "loadbalancer_log.txt", "Periodic statistics log file")
	runCmd.Flags().Int64Var(&logInterval, "log-interval", 100, "Cycles between statistics records")
	runCmd.Flags().Int64Var(&statusInterval, "status-interval", 1000, "Cycles between console status displays")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
