package remote

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records page requests against a redundant source.
	Metrics interface {
		ObserveFetch(source, outcome string, blocks int, err error, started time.Time)
	}
)
