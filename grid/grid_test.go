package grid

import (
	"fmt"
	"image"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	rect   Rect
	title  string
	thumb  image.Image
	placed int
}

func (h *fakeHandle) Place(r Rect)                 { h.rect = r; h.placed++ }
func (h *fakeHandle) SetTitle(title string)        { h.title = title }
func (h *fakeHandle) SetThumbnail(img image.Image) { h.thumb = img }

type fakeSource struct {
	titles     []string
	nilHandles map[int]bool
	handles    []*fakeHandle
	callbacks  map[int]func(image.Image)
	countCalls int
}

func newFakeSource(n int) *fakeSource {
	s := &fakeSource{
		nilHandles: map[int]bool{},
		callbacks:  map[int]func(image.Image){},
	}
	for i := 0; i < n; i++ {
		s.titles = append(s.titles, fmt.Sprintf("game-%02d", i))
	}
	return s
}

func (s *fakeSource) Count() int {
	s.countCalls++
	return len(s.titles)
}

func (s *fakeSource) TitleForIndex(i int) string { return s.titles[i] }

func (s *fakeSource) ElementForIndex(i int) VisualHandle {
	if s.nilHandles[i] {
		return nil
	}
	h := &fakeHandle{}
	s.handles = append(s.handles, h)
	return h
}

func (s *fakeSource) Thumbnail(i int, cb func(image.Image)) {
	s.callbacks[i] = cb
}

type selection struct {
	index  int
	handle VisualHandle
}

type recordingDelegate struct {
	selected []selection
}

func (d *recordingDelegate) DidSelectItem(index int, handle VisualHandle) {
	d.selected = append(d.selected, selection{index: index, handle: handle})
}

// countingTweener finishes instantly and remembers each target.
type countingTweener struct {
	targets []float32
}

func (c *countingTweener) Tween(from, to float32, d time.Duration, step func(float32), done func()) func() {
	c.targets = append(c.targets, to)
	return immediateTweener{}.Tween(from, to, d, step, done)
}

type stubRecognizer struct {
	state     GestureState
	direction SwipeDirection
	resets    int
}

func (r *stubRecognizer) State() GestureState       { return r.state }
func (r *stubRecognizer) Direction() SwipeDirection { return r.direction }
func (r *stubRecognizer) Reset() {
	r.resets++
	r.state = GestureIdle
	r.direction = SwipeNone
}

type fixture struct {
	grid       *Grid
	source     *fakeSource
	delegate   *recordingDelegate
	tweener    *countingTweener
	recognizer *stubRecognizer
}

func newFixture(t *testing.T, n int) *fixture {
	t.Helper()
	f := &fixture{
		source:     newFakeSource(n),
		delegate:   &recordingDelegate{},
		tweener:    &countingTweener{},
		recognizer: &stubRecognizer{},
	}
	f.grid = New(DefaultConfig(), f.source, f.delegate,
		WithTweener(f.tweener), WithRecognizer(f.recognizer), WithOrientation(Portrait))
	f.grid.Resize(fyne.NewSize(680, 400))
	return f
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func (f *fixture) drag(from, to fyne.Position) {
	f.grid.OnTouchEvent(TouchStart, from, t0)
	f.grid.OnTouchEvent(TouchMove, to, t0.Add(50*time.Millisecond))
	f.grid.OnTouchEvent(TouchEnd, to, t0.Add(100*time.Millisecond))
}

func TestGrid_ReloadPlacesEveryIndexOnce(t *testing.T) {
	f := newFixture(t, 10)

	items := f.grid.Items()
	require.Len(t, items, 10)
	seen := map[uuid.UUID]bool{}
	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.False(t, seen[item.ID], "duplicate item id")
		seen[item.ID] = true
		assert.Equal(t, fmt.Sprintf("game-%02d", i), item.Handle.(*fakeHandle).title)
	}

	assert.Equal(t, 0, f.grid.MinPage())
	assert.Equal(t, 2, f.grid.MaxPage())

	rect := items[8].Rect
	assert.Equal(t, Rect{X1: 746, Y1: 20, X2: 874, Y2: 148}, rect)
	assert.Equal(t, rect, items[8].Handle.(*fakeHandle).rect)
}

func TestGrid_MaxPageZeroWhenNothingFits(t *testing.T) {
	f := newFixture(t, 10)
	f.grid.Resize(fyne.NewSize(50, 50))

	assert.Equal(t, 0, f.grid.MaxPage())
	assert.Equal(t, 0, f.grid.PageCount())
	assert.Empty(t, f.grid.Items())
	assert.Equal(t, 0, f.grid.Page())
}

func TestGrid_EmptySourceHasNoPages(t *testing.T) {
	f := newFixture(t, 0)

	assert.Equal(t, 0, f.grid.MaxPage())
	assert.Equal(t, f.grid.MinPage(), f.grid.MaxPage())

	f.drag(fyne.NewPos(600, 100), fyne.NewPos(100, 100))
	assert.Equal(t, 0, f.grid.Page())
}

func TestGrid_ItemForPosition(t *testing.T) {
	f := newFixture(t, 10)

	idx, ok := f.grid.ItemForPosition(fyne.NewPos(70, 30))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = f.grid.ItemForPosition(fyne.NewPos(5, 5))
	assert.False(t, ok, "margin is outside every cell")

	// Right edge is exclusive.
	_, ok = f.grid.ItemForPosition(fyne.NewPos(66+128, 30))
	assert.False(t, ok)

	f.grid.SetPage(1)
	idx, ok = f.grid.ItemForPosition(fyne.NewPos(70, 30))
	require.True(t, ok)
	assert.Equal(t, 8, idx)

	// Second row of page 1 is empty with 10 items.
	_, ok = f.grid.ItemForPosition(fyne.NewPos(70, 170))
	assert.False(t, ok)
}

func TestItemForPosition_FirstMatchWins(t *testing.T) {
	overlap := Rect{X1: 0, Y1: 0, X2: 100, Y2: 100}
	items := []*Item{
		{Index: 0, Rect: Rect{X1: 500, Y1: 500, X2: 600, Y2: 600}},
		{Index: 1, Rect: overlap},
		{Index: 2, Rect: overlap},
	}

	idx, ok := itemForPosition(items, fyne.NewPos(50, 50), 0, 680)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestGrid_TapSelectsItem(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(70, 30), t0)
	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(75, 31), t0)
	f.grid.OnTouchEvent(TouchEnd, fyne.NewPos(78, 31), t0)

	require.Len(t, f.delegate.selected, 1)
	assert.Equal(t, 0, f.delegate.selected[0].index)
	assert.Same(t, f.grid.Items()[0].Handle, f.delegate.selected[0].handle)
	assert.Equal(t, 0, f.grid.Page())
	assert.Empty(t, f.tweener.targets, "a tap does not animate")
	assert.False(t, f.grid.Touching())
}

func TestGrid_TapOutsideItemsSelectsNothing(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(5, 5), t0)
	f.grid.OnTouchEvent(TouchEnd, fyne.NewPos(5, 5), t0)

	assert.Empty(t, f.delegate.selected)
}

func TestGrid_SwipeLeftAdvancesPage(t *testing.T) {
	f := newFixture(t, 10)

	// 300px is beyond 585/2 - 40.
	f.drag(fyne.NewPos(600, 100), fyne.NewPos(300, 100))

	assert.Equal(t, 1, f.grid.Page())
	assert.Equal(t, float32(-680), f.grid.Offset())
	assert.Empty(t, f.delegate.selected)
	assert.Equal(t, 1, f.recognizer.resets)
	assert.False(t, f.grid.Touching())
}

func TestGrid_SwipeRightGoesBack(t *testing.T) {
	f := newFixture(t, 20)
	f.grid.SetPage(2)

	f.drag(fyne.NewPos(100, 100), fyne.NewPos(400, 100))

	assert.Equal(t, 1, f.grid.Page())
	assert.Equal(t, float32(-680), f.grid.Offset())
}

func TestGrid_SwipePastLastPageSnapsBack(t *testing.T) {
	f := newFixture(t, 10)
	f.grid.SetPage(1)
	f.tweener.targets = nil

	f.drag(fyne.NewPos(600, 100), fyne.NewPos(300, 100))

	assert.Equal(t, 1, f.grid.Page())
	assert.Equal(t, float32(-680), f.grid.Offset())
	assert.Equal(t, []float32{-680}, f.tweener.targets, "snap back animates to the current page")
}

func TestGrid_SwipePastFirstPageSnapsBack(t *testing.T) {
	f := newFixture(t, 10)

	f.drag(fyne.NewPos(100, 100), fyne.NewPos(450, 100))

	assert.Equal(t, 0, f.grid.Page())
	assert.Equal(t, float32(0), f.grid.Offset())
	assert.Equal(t, 1, f.recognizer.resets)
}

func TestGrid_ShortDragUsesRecognizer(t *testing.T) {
	f := newFixture(t, 10)
	f.recognizer.state = GestureRecognized
	f.recognizer.direction = SwipeLeft

	f.drag(fyne.NewPos(400, 100), fyne.NewPos(340, 100))

	assert.Equal(t, 1, f.grid.Page())
	assert.Equal(t, GestureIdle, f.recognizer.state, "recognizer is reset after the gesture")
}

func TestGrid_ShortDragWithoutSwipeSnapsBack(t *testing.T) {
	f := newFixture(t, 10)

	f.drag(fyne.NewPos(400, 100), fyne.NewPos(340, 100))

	assert.Equal(t, 0, f.grid.Page())
	assert.Equal(t, float32(0), f.grid.Offset())
	assert.Equal(t, []float32{0}, f.tweener.targets)
	assert.Equal(t, 1, f.recognizer.resets)
	assert.Empty(t, f.delegate.selected, "a drag never selects")
}

func TestGrid_RubberBandAtEdges(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(100, 100), t0)
	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(200, 100), t0)
	assert.Equal(t, float32(50), f.grid.Offset(), "dragging before the first page is damped")

	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(0, 100), t0)
	assert.Equal(t, float32(-100), f.grid.Offset(), "dragging towards the next page is not")
	f.grid.OnTouchEvent(TouchCancel, fyne.NewPos(0, 100), t0)

	f.grid.SetPage(1)
	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(300, 100), t0)
	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(200, 100), t0)
	assert.Equal(t, float32(-680-50), f.grid.Offset(), "dragging past the last page is damped")
}

func TestGrid_MoveBelowThresholdDoesNotScroll(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(100, 100), t0)
	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(109, 100), t0)
	assert.Equal(t, float32(0), f.grid.Offset())

	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(80, 100), t0)
	assert.Equal(t, float32(-20), f.grid.Offset())

	// Once moved, returning near the start is still a drag.
	f.grid.OnTouchEvent(TouchEnd, fyne.NewPos(101, 100), t0)
	assert.Empty(t, f.delegate.selected)
}

func TestGrid_StartWhileActiveIsIgnored(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(100, 100), t0)
	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(500, 100), t0)
	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(80, 100), t0)

	assert.Equal(t, float32(-20), f.grid.Offset(), "offset follows the first start")
}

func TestGrid_EventsWithoutStartAreIgnored(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(80, 100), t0)
	f.grid.OnTouchEvent(TouchEnd, fyne.NewPos(70, 30), t0)

	assert.Equal(t, float32(0), f.grid.Offset())
	assert.Empty(t, f.delegate.selected)
}

func TestGrid_CancelSnapsBack(t *testing.T) {
	f := newFixture(t, 10)

	f.grid.OnTouchEvent(TouchStart, fyne.NewPos(400, 100), t0)
	f.grid.OnTouchEvent(TouchMove, fyne.NewPos(100, 100), t0)
	f.grid.OnTouchEvent(TouchCancel, fyne.NewPos(100, 100), t0)

	assert.Equal(t, 0, f.grid.Page())
	assert.Equal(t, float32(0), f.grid.Offset())
	assert.False(t, f.grid.Touching())
	assert.Empty(t, f.delegate.selected)
}

func TestGrid_SetPageOutOfRangeIsNoop(t *testing.T) {
	f := newFixture(t, 10)

	for _, p := range []int{-1, 2, 5, 0} {
		f.grid.SetPage(p)
		assert.Equal(t, 0, f.grid.Page(), "SetPage(%d)", p)
		assert.Equal(t, float32(0), f.grid.Offset(), "SetPage(%d)", p)
	}
	assert.Empty(t, f.tweener.targets)

	f.grid.SetPage(1)
	assert.Equal(t, []float32{-680}, f.tweener.targets)
}

func TestGrid_NextPreviousPage(t *testing.T) {
	f := newFixture(t, 20)

	f.grid.NextPage()
	f.grid.NextPage()
	f.grid.NextPage()
	assert.Equal(t, 2, f.grid.Page())

	f.grid.PreviousPage()
	assert.Equal(t, 1, f.grid.Page())
}

func TestGrid_TransitionEndReportsPage(t *testing.T) {
	f := newFixture(t, 10)
	var ended []int
	f.grid.OnTransitionEnd = func(page int) {
		ended = append(ended, page)
	}

	f.grid.SetPage(1)
	f.drag(fyne.NewPos(300, 100), fyne.NewPos(320, 100))

	assert.Equal(t, []int{1, 1}, ended)
}

func TestGrid_StaleThumbnailIsDiscarded(t *testing.T) {
	f := newFixture(t, 10)
	stale := f.source.callbacks[3]
	require.NotNil(t, stale)

	f.grid.ReloadData()
	fresh := f.source.callbacks[3]
	current := f.grid.Items()[3].Handle.(*fakeHandle)

	stale(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Nil(t, current.thumb, "late callback from before the reload must not attach")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fresh(img)
	assert.Same(t, img, current.thumb)
}

func TestGrid_StaleThumbnailAfterShrink(t *testing.T) {
	f := newFixture(t, 10)
	stale := f.source.callbacks[9]

	f.source.titles = f.source.titles[:4]
	f.grid.ReloadData()

	assert.NotPanics(t, func() {
		stale(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	})
	assert.Len(t, f.grid.Items(), 4)
}

func TestGrid_AbsentThumbnailLeavesItemBare(t *testing.T) {
	f := newFixture(t, 10)

	f.source.callbacks[0](nil)
	assert.Nil(t, f.grid.Items()[0].Handle.(*fakeHandle).thumb)
}

func TestGrid_NilHandleIsPlacedWithoutContent(t *testing.T) {
	source := newFakeSource(3)
	source.nilHandles[1] = true
	delegate := &recordingDelegate{}
	g := New(DefaultConfig(), source, delegate, WithTweener(ImmediateTweener()))

	require.NotPanics(t, func() {
		g.Resize(fyne.NewSize(680, 400))
	})
	require.Len(t, g.Items(), 3)
	assert.Nil(t, g.Items()[1].Handle)
	_, asked := source.callbacks[1]
	assert.False(t, asked, "no thumbnail without an element")

	g.OnTouchEvent(TouchStart, fyne.NewPos(66+140+5, 30), t0)
	g.OnTouchEvent(TouchEnd, fyne.NewPos(66+140+5, 30), t0)
	require.Len(t, delegate.selected, 1)
	assert.Equal(t, 1, delegate.selected[0].index)
	assert.Nil(t, delegate.selected[0].handle)
}

func TestGrid_ResizeIsIdempotent(t *testing.T) {
	f := newFixture(t, 10)
	f.grid.SetPage(1)
	calls := f.source.countCalls

	f.grid.Resize(fyne.NewSize(680, 400))
	f.grid.Resize(fyne.NewSize(680, 400))

	assert.Equal(t, calls, f.source.countCalls, "same geometry must not reload")
	assert.Equal(t, 1, f.grid.Page())
	assert.Equal(t, float32(-680), f.grid.Offset())
}

func TestGrid_WidthChangeKeepsItemsAndPage(t *testing.T) {
	f := newFixture(t, 10)
	f.grid.SetPage(1)
	calls := f.source.countCalls
	id := f.grid.Items()[8].ID

	// Still 4 columns and 2 rows.
	f.grid.Resize(fyne.NewSize(690, 400))

	assert.Equal(t, calls, f.source.countCalls)
	assert.Equal(t, 1, f.grid.Page())
	assert.Equal(t, float32(-690), f.grid.Offset())
	item := f.grid.Items()[8]
	assert.Equal(t, id, item.ID)
	assert.Equal(t, float32(690+71), item.Rect.X1)
	assert.Equal(t, item.Rect, item.Handle.(*fakeHandle).rect)
}

func TestGrid_RowChangeResetsAndReloads(t *testing.T) {
	f := newFixture(t, 10)
	f.grid.SetPage(1)
	calls := f.source.countCalls

	f.grid.Resize(fyne.NewSize(680, 600))

	assert.Equal(t, calls+1, f.source.countCalls)
	assert.Equal(t, 4, f.grid.Layout().Rows)
	assert.Equal(t, 0, f.grid.Page())
	assert.Equal(t, float32(0), f.grid.Offset())
	assert.Equal(t, 1, f.grid.MaxPage())
}

func TestGrid_OrientationChangeRelayouts(t *testing.T) {
	f := newFixture(t, 10)
	f.grid.SetPage(1)

	f.grid.SetOrientation(Landscape)

	assert.Equal(t, Landscape, f.grid.Orientation())
	assert.Equal(t, 3, f.grid.Layout().Cols)
	assert.Equal(t, 0, f.grid.Page())
	assert.Equal(t, 2, f.grid.MaxPage())
}

func TestGrid_ReloadClampsPageWhenItemsShrink(t *testing.T) {
	f := newFixture(t, 20)
	f.grid.SetPage(2)

	f.source.titles = f.source.titles[:3]
	f.grid.ReloadData()

	assert.Equal(t, 0, f.grid.Page())
	assert.Equal(t, float32(0), f.grid.Offset())
}

func TestDecidePage(t *testing.T) {
	recognized := func(d SwipeDirection) GestureRecognizer {
		return &stubRecognizer{state: GestureRecognized, direction: d}
	}

	tests := []struct {
		name     string
		current  int
		distance float32
		rec      GestureRecognizer
		want     int
	}{
		{name: "long drag left", current: 1, distance: -260, want: 2},
		{name: "long drag right", current: 1, distance: 260, want: 0},
		{name: "exactly at limit stays", current: 1, distance: -252.5, want: 1},
		{name: "short drag stays", current: 1, distance: -100, rec: &stubRecognizer{}, want: 1},
		{name: "short drag with left swipe", current: 1, distance: -20, rec: recognized(SwipeLeft), want: 2},
		{name: "short drag with right swipe", current: 1, distance: 20, rec: recognized(SwipeRight), want: 0},
		{name: "swipe ignored after long drag", current: 1, distance: -300, rec: recognized(SwipeRight), want: 2},
		{name: "clamped at first page", current: 0, distance: 400, want: 0},
		{name: "clamped at last page", current: 2, distance: -400, want: 2},
		{name: "swipe clamped at last page", current: 2, distance: -5, rec: recognized(SwipeLeft), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decidePage(tt.current, 0, 3, tt.distance, 585, 40, tt.rec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRubberBand(t *testing.T) {
	assert.Equal(t, float32(50), rubberBand(100, 0, 0, 3))
	assert.Equal(t, float32(-100), rubberBand(-100, 0, 0, 3))
	assert.Equal(t, float32(-50), rubberBand(-100, 2, 0, 3))
	assert.Equal(t, float32(100), rubberBand(100, 2, 0, 3))
	assert.Equal(t, float32(100), rubberBand(100, 1, 0, 3))
}

// heldTweener keeps the running transition so a test can drive it. Stopping
// it drops step and done, like fyne.Animation.Stop.
type heldTweener struct {
	to   float32
	step func(float32)
	done func()
}

func (h *heldTweener) Tween(_, to float32, _ time.Duration, step func(float32), done func()) func() {
	h.to, h.step, h.done = to, step, done
	return func() {
		h.step, h.done = nil, nil
	}
}

func (h *heldTweener) advance(x float32) {
	if h.step != nil {
		h.step(x)
	}
}

func (h *heldTweener) finish() {
	h.advance(h.to)
	if h.done != nil {
		done := h.done
		h.step, h.done = nil, nil
		done()
	}
}

func newHeldGrid(t *testing.T, n int) (*Grid, *fakeSource, *heldTweener, *[]int) {
	t.Helper()
	source := newFakeSource(n)
	tweener := &heldTweener{}
	g := New(DefaultConfig(), source, &recordingDelegate{},
		WithTweener(tweener), WithRecognizer(&stubRecognizer{}), WithOrientation(Portrait))
	g.Resize(fyne.NewSize(680, 400))

	ended := []int{}
	g.OnTransitionEnd = func(page int) {
		ended = append(ended, page)
	}
	return g, source, tweener, &ended
}

func TestGrid_TapDuringTransitionFinishesIt(t *testing.T) {
	g, _, tweener, ended := newHeldGrid(t, 10)
	delegate := &recordingDelegate{}
	g.SetDelegate(delegate)

	g.SetPage(1)
	tweener.advance(-340)
	require.Equal(t, float32(-340), g.Offset())

	// Item 8 is the first cell of page 1.
	g.OnTouchEvent(TouchStart, fyne.NewPos(100, 50), t0)
	g.OnTouchEvent(TouchEnd, fyne.NewPos(100, 50), t0.Add(80*time.Millisecond))
	tweener.finish()

	assert.Equal(t, 1, g.Page())
	assert.Equal(t, float32(-680), g.Offset())
	assert.Equal(t, []int{1}, *ended)
	require.Len(t, delegate.selected, 1)
	assert.Equal(t, 8, delegate.selected[0].index)
}

func TestGrid_CancelDuringTransitionFinishesIt(t *testing.T) {
	g, _, tweener, ended := newHeldGrid(t, 10)

	g.SetPage(1)
	tweener.advance(-200)
	g.OnTouchEvent(TouchStart, fyne.NewPos(100, 50), t0)
	g.OnTouchEvent(TouchCancel, fyne.NewPos(100, 50), t0.Add(20*time.Millisecond))
	tweener.finish()

	assert.Equal(t, float32(-680), g.Offset())
	assert.Equal(t, []int{1}, *ended)
}

func TestGrid_TapWhenSettledDoesNotAnimate(t *testing.T) {
	g, _, tweener, ended := newHeldGrid(t, 10)

	g.OnTouchEvent(TouchStart, fyne.NewPos(100, 50), t0)
	g.OnTouchEvent(TouchEnd, fyne.NewPos(100, 50), t0)

	assert.Nil(t, tweener.step)
	assert.Empty(t, *ended)
}

func TestGrid_ReloadStopsTransitionToVanishedPage(t *testing.T) {
	g, source, tweener, ended := newHeldGrid(t, 20)

	g.SetPage(2)
	tweener.advance(-1000)

	source.titles = source.titles[:5]
	g.ReloadData()
	tweener.finish()

	assert.Equal(t, 0, g.Page())
	assert.Equal(t, float32(0), g.Offset())
	assert.Empty(t, *ended)
}
