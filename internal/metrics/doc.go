// Package metrics records run metrics behind a small Recorder interface.
//
// Components hold a Recorder and default to NoopRecorder, so call sites
// never nil-check. When a metrics file is configured the CLI injects a
// PrometheusRecorder and writes its registry in the node-exporter textfile
// format after each run:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	doc, _ := documenter.New(opts, documenter.WithRecorder(rec))
//	_, runErr := doc.Run(ctx)
//	_ = rec.WriteTextfile("/var/lib/node_exporter/apidocs.prom")
package metrics
