// Package recording provides a chart surface that records drawing
// operations instead of rasterizing them.
//
// A Recorder implements ggchart.Surface. Every call is stored as a typed
// command that can be inspected, compared, or replayed onto any other
// surface. Tests use it to assert exactly which draw calls a render pass
// made. The registry maps backend names to surface factories; the ggchart
// command resolves its --backend flag through it.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(300, 250)
//	ggchart.NewDonutRenderer().Render(rec, viewport, theme, categories...)
//
//	for _, cmd := range rec.Commands() {
//		fmt.Println(cmd.Type())
//	}
//
// # Playback to Backends
//
// Backends are surfaces registered by name, following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/ggchart/raster" // registers "raster"
//
//	dst, _ := recording.NewBackend("raster", 300, 250)
//	rec.FinishRecording().Playback(dst)
//	dst.(recording.FileBackend).SaveToFile("chart.png")
//
// # Thread Safety
//
// Recorder and Recording are not safe for concurrent use. The backend
// registry is.
package recording
