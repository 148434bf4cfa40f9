package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/okian/gridiron/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper()

		Convey("When recording a new upload ID", func() {
			seen := d.SeenAndRecord(ctx, "upload-1")

			Convey("Then it is newly recorded", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports a duplicate", func() {
				So(d.SeenAndRecord(ctx, "upload-1"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording after a failed enqueue", func() {
			d.SeenAndRecord(ctx, "upload-2")
			d.Unrecord(ctx, "upload-2")

			Convey("Then the batch can be retried", func() {
				So(d.SeenAndRecord(ctx, "upload-2"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an unknown ID", func() {
			d.Unrecord(ctx, "never-seen")

			Convey("Then nothing changes", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}

func TestBoundedEviction(t *testing.T) {
	Convey("Given a deduper bounded to three IDs", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

		for i := 0; i < 3; i++ {
			d.SeenAndRecord(ctx, fmt.Sprintf("upload-%d", i))
		}

		Convey("When a fourth ID arrives", func() {
			d.SeenAndRecord(ctx, "upload-3")

			Convey("Then the oldest ID is evicted first", func() {
				So(d.Size(), ShouldEqual, 3)
				So(d.SeenAndRecord(ctx, "upload-0"), ShouldBeFalse) // evicted, so new again
				So(d.SeenAndRecord(ctx, "upload-3"), ShouldBeTrue)
			})
		})
	})

	Convey("Given an unbounded deduper", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))

		Convey("When many IDs arrive", func() {
			for i := 0; i < 500; i++ {
				d.SeenAndRecord(ctx, fmt.Sprintf("upload-%d", i))
			}

			Convey("Then nothing is evicted", func() {
				So(d.Size(), ShouldEqual, 500)
				So(d.SeenAndRecord(ctx, "upload-0"), ShouldBeTrue)
			})
		})
	})
}
