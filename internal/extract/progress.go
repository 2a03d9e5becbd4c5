package extract

// ProgressReporter provides callbacks for reporting walk progress.
// Implementations can display progress bars, log messages, or remain silent.
// Reporting is observational only; the walk does not depend on it.
type ProgressReporter interface {
	// OnDiscoveryStart is called when file discovery begins.
	OnDiscoveryStart()

	// OnDiscoveryComplete is called when file discovery finishes.
	OnDiscoveryComplete(totalFiles int)

	// OnFileProcessed is called after each file is processed.
	OnFileProcessed(fileName string)

	// OnWalkComplete is called when every eligible file has been processed.
	// warnings counts files that could not be read or decoded.
	OnWalkComplete(processed, warnings int)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()                      {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(totalFiles int)     {}
func (n *NoOpProgressReporter) OnFileProcessed(fileName string)        {}
func (n *NoOpProgressReporter) OnWalkComplete(processed, warnings int) {}
