// Package journal records brightness adjustments made by light.
//
// Every value or state write performed by a command is captured as an
// Event. The journal is separate from diagnostic logging (logrus): it is a
// machine-readable history of what was changed, where and from what.
//
// # Basic Usage
//
//	fl, err := journal.NewFileLogger(filepath.Join(stateDir, journal.FileName))
//	if err != nil {
//	    return err
//	}
//	defer fl.Close()
//
//	cfg.Journal = journal.NewMultiLogger(fl, journal.NewLogrusAdapter(logger))
//
// # File Format
//
// Journal files are a stream of CBOR-encoded events with integer map keys
// and RFC3339Nano timestamps. New events are appended. The light-log tool
// views, filters and exports them.
package journal
