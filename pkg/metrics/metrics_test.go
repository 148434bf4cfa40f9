package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When created with default options", func() {
			manager := NewManager(WithRegistry(prometheus.NewRegistry()))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When created with custom options", func() {
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(prometheus.NewRegistry()),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When created with empty or nil option values", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRegistry(prometheus.NewRegistry()),
			)

			Convey("Then the defaults stand", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level recording functions", t, func() {
		Convey("When recording ingest metrics", func() {
			So(func() {
				RecordRowIngested(false)
				RecordRowIngested(true)
				RecordDuplicateUpload()
				RecordSnapshotAppend()
				RecordSnapshotReplace()
				UpdatePlayersTracked(42)
				UpdateRevision(7)
			}, ShouldNotPanic)
		})

		Convey("When recording store and query latencies", func() {
			So(func() {
				RecordStoreAppendLatency(1.5)
				RecordStoreQueryLatency(3.0)
				RecordQueryLatency("all_time_records", 12.0)
				RecordQueryLatency("pace", 0.0)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("/seasons", "POST", "202")
				RecordHTTPRequest("/records/all-time", "GET", "200")
				RecordHTTPRequestDuration("/seasons", "POST", "202", 10.0)
			}, ShouldNotPanic)
		})

		Convey("When recording queue and worker metrics", func() {
			So(func() {
				UpdateQueueSize(100)
				UpdateQueueCapacity(10000)
				RecordQueueEnqueue()
				RecordQueueDequeue()
				RecordQueueEnqueueError()
				UpdateWorkerCount(8)
				RecordWorkerProcessingLatency(2.0)
				RecordWorkerError()
			}, ShouldNotPanic)
		})

		Convey("When recording errors by component", func() {
			So(func() {
				RecordErrorByComponent("repository", "append_error")
				RecordErrorByComponent("queue", "capacity_exceeded")
				RecordErrorByComponent("", "")
			}, ShouldNotPanic)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given concurrent recorders", t, func() {
		done := make(chan bool, 8)

		for i := 0; i < 8; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					RecordRowIngested(j%2 == 0)
					UpdateQueueSize(j)
					RecordQueryLatency("greatest_seasons", float64(j))
				}
				done <- true
			}()
		}

		for i := 0; i < 8; i++ {
			<-done
		}

		Convey("Then concurrent access does not panic", func() {
			So(true, ShouldBeTrue)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When requested", func() {
			registry := GetRegistry()

			Convey("Then it is the custom registry used by the global manager", func() {
				So(registry, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
			})
		})
	})
}
