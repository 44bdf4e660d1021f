// Package log captures Baton codec activity for later inspection.
//
// Capture is separate from operational logging (slog). Every encode and
// decode performed through a Recorder produces one Event holding the packet
// bytes, the message and any decode error, so a session can be replayed
// and examined with the baton-log tool.
//
// # Basic Usage
//
//	// Print events to the console
//	rec := log.NewRecorder(log.NewSlogAdapter(slog.Default()))
//
//	// Write events to a capture file
//	fl, _ := log.NewFileLogger("session.blog")
//	defer fl.Close()
//	rec := log.NewRecorder(fl)
//
//	// Both
//	rec := log.NewRecorder(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
//	pkt := rec.Encode(wire.NewSetTempo(wire.ConductorC2, wire.TargetPercussion, 120))
//
// # File Format
//
// Capture files are a plain concatenation of CBOR-encoded events with
// integer map keys. The conventional extension is .blog.
package log
