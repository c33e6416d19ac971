package fastlist_test

import (
	"testing"

	"github.com/npillmayer/fastlist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	. "github.com/smartystreets/goconvey/convey"
)

func TestListScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fastlist")
	defer teardown()
	//
	Convey("Given an empty list", t, func() {
		l := fastlist.New[int]()
		So(l.Len(), ShouldEqual, 0)
		So(l.Cap(), ShouldEqual, 0)

		Convey("adding 1, 2, 3 grows it to the default capacity", func() {
			l.Add(1)
			l.Add(2)
			l.Add(3)
			So(l.Len(), ShouldEqual, 3)
			So(l.ToArray(), ShouldResemble, []int{1, 2, 3})
			So(l.Cap(), ShouldEqual, fastlist.DefaultCapacity)

			Convey("clearing and adding behaves like a fresh list", func() {
				l.Clear()
				l.Add(7)
				So(l.ToArray(), ShouldResemble, []int{7})
				So(l.Cap(), ShouldEqual, fastlist.DefaultCapacity)
			})
		})
	})

	Convey("Given the list [1 2 3 4 5]", t, func() {
		l := fastlist.Of(1, 2, 3, 4, 5)

		Convey("removing the range (1, 2) leaves [1 4 5]", func() {
			l.RemoveRange(1, 2)
			So(l.ToArray(), ShouldResemble, []int{1, 4, 5})
			So(l.Len(), ShouldEqual, 3)
		})

		Convey("removing at 2 keeps the order of the remaining elements", func() {
			l.RemoveAt(2)
			So(l.ToArray(), ShouldResemble, []int{1, 2, 4, 5})
		})

		Convey("reversing twice restores it", func() {
			l.Reverse()
			So(l.ToArray(), ShouldResemble, []int{5, 4, 3, 2, 1})
			l.Reverse()
			So(l.ToArray(), ShouldResemble, []int{1, 2, 3, 4, 5})
		})
	})

	Convey("Given the list [5 3 1 4]", t, func() {
		l := fastlist.Of(5, 3, 1, 4)

		Convey("sorting yields [1 3 4 5]", func() {
			fastlist.Sort(l)
			So(l.ToArray(), ShouldResemble, []int{1, 3, 4, 5})
		})
	})

	Convey("Given the list [1 2 3]", t, func() {
		l := fastlist.Of(1, 2, 3)

		Convey("inserting [9 9] at 1 yields [1 9 9 2 3]", func() {
			l.InsertRange(1, fastlist.Slice([]int{9, 9}))
			So(l.ToArray(), ShouldResemble, []int{1, 9, 9, 2, 3})
		})

		Convey("inserting the list into itself equals inserting a copy", func() {
			cp := fastlist.Of(l.ToArray()...)
			cp.InsertRange(2, fastlist.Slice(l.ToArray()))
			l.InsertRange(2, l)
			So(l.ToArray(), ShouldResemble, cp.ToArray())
			So(l.ToArray(), ShouldResemble, []int{1, 2, 1, 2, 3, 3})
		})

		Convey("inserting 7 at 1 shifts 2 and 3 up", func() {
			l.Insert(1, 7)
			So(l.At(1), ShouldEqual, 7)
			So(l.At(2), ShouldEqual, 2)
			So(l.At(3), ShouldEqual, 3)
		})
	})
}
