// Package metrics holds the Prometheus collectors of the sync service.
package metrics

const namespace = "peersync"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
