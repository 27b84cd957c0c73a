package focus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/domain/entity/mocks"
	"github.com/accessible-ui/tabs/internal/ui/focus"
)

func registryWith(indices ...entity.TabIndex) *entity.Registry {
	reg := entity.NewRegistry()
	for _, idx := range indices {
		reg.Register(idx, entity.TabRecord{})
	}
	return reg
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name    string
		indices []entity.TabIndex
		nav     func(focus.Slots) (entity.TabIndex, bool)
		want    entity.TabIndex
		wantOK  bool
	}{
		{
			name:    "next moves forward",
			indices: []entity.TabIndex{0, 1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Next(s, 0) },
			want:    1,
			wantOK:  true,
		},
		{
			name:    "next wraps from highest",
			indices: []entity.TabIndex{0, 1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Next(s, 2) },
			want:    0,
			wantOK:  true,
		},
		{
			name:    "next lands on hole",
			indices: []entity.TabIndex{0, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Next(s, 0) },
			want:    1,
			wantOK:  true,
		},
		{
			name:    "prev moves back",
			indices: []entity.TabIndex{0, 1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Prev(s, 2) },
			want:    1,
			wantOK:  true,
		},
		{
			name:    "prev wraps from zero",
			indices: []entity.TabIndex{0, 1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Prev(s, 0) },
			want:    2,
			wantOK:  true,
		},
		{
			name:    "prev lands on unmounted zero",
			indices: []entity.TabIndex{1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Prev(s, 1) },
			want:    0,
			wantOK:  true,
		},
		{
			name:    "prev wraps only from zero",
			indices: []entity.TabIndex{1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Prev(s, 0) },
			want:    2,
			wantOK:  true,
		},
		{
			name:    "next wraps to zero even when unmounted",
			indices: []entity.TabIndex{1, 2},
			nav:     func(s focus.Slots) (entity.TabIndex, bool) { return focus.Next(s, 2) },
			want:    0,
			wantOK:  true,
		},
		{
			name:    "first is index zero",
			indices: []entity.TabIndex{3, 1, 5},
			nav:     focus.First,
			want:    0,
			wantOK:  true,
		},
		{
			name:    "last is length minus one",
			indices: []entity.TabIndex{3, 1, 5},
			nav:     focus.Last,
			want:    5,
			wantOK:  true,
		},
		{
			name:   "next on empty",
			nav:    func(s focus.Slots) (entity.TabIndex, bool) { return focus.Next(s, 0) },
			want:   entity.NoTab,
			wantOK: false,
		},
		{
			name:   "prev on empty",
			nav:    func(s focus.Slots) (entity.TabIndex, bool) { return focus.Prev(s, 0) },
			want:   entity.NoTab,
			wantOK: false,
		},
		{
			name:   "first on empty",
			nav:    focus.First,
			want:   entity.NoTab,
			wantOK: false,
		},
		{
			name:   "last on empty",
			nav:    focus.Last,
			want:   entity.NoTab,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.nav(registryWith(tt.indices...))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestRover_FocusesTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockFocusTarget(ctrl)
	second := mocks.NewMockFocusTarget(ctrl)

	reg := entity.NewRegistry()
	reg.Register(0, entity.TabRecord{Handle: first})
	reg.Register(1, entity.TabRecord{Handle: second})

	opts := entity.FocusOptions{PreventScroll: true}
	second.EXPECT().Focus(opts).Times(1)

	rover := focus.NewRover(opts)
	assert.True(t, rover.FocusNext(context.Background(), reg, 0))
}

func TestRover_DisabledStillFocusable(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mocks.NewMockFocusTarget(ctrl)

	reg := entity.NewRegistry()
	reg.Register(0, entity.TabRecord{})
	reg.Register(1, entity.TabRecord{Handle: target, Disabled: true})

	target.EXPECT().Focus(gomock.Any()).Times(1)

	rover := focus.NewRover(entity.FocusOptions{})
	assert.True(t, rover.FocusLast(context.Background(), reg))
}

func TestRover_HoleIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockFocusTarget(ctrl)
	third := mocks.NewMockFocusTarget(ctrl)

	reg := entity.NewRegistry()
	reg.Register(0, entity.TabRecord{Handle: first})
	reg.Register(2, entity.TabRecord{Handle: third})
	// Neither target may be focused.

	rover := focus.NewRover(entity.FocusOptions{})
	assert.False(t, rover.FocusNext(context.Background(), reg, 0))
}

func TestRover_UnmountedZeroIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	second := mocks.NewMockFocusTarget(ctrl)
	third := mocks.NewMockFocusTarget(ctrl)

	reg := entity.NewRegistry()
	reg.Register(1, entity.TabRecord{Handle: second})
	reg.Register(2, entity.TabRecord{Handle: third})
	// Slot 0 is empty: home and prev from 1 must not move focus elsewhere.

	rover := focus.NewRover(entity.FocusOptions{})
	ctx := context.Background()
	assert.False(t, rover.FocusFirst(ctx, reg))
	assert.False(t, rover.FocusPrev(ctx, reg, 1))
	assert.False(t, rover.Handle(ctx, reg, entity.CommandFirst, 2))
}

func TestRover_EmptyRegistry(t *testing.T) {
	rover := focus.NewRover(entity.FocusOptions{})
	reg := entity.NewRegistry()
	ctx := context.Background()

	assert.False(t, rover.FocusNext(ctx, reg, 0))
	assert.False(t, rover.FocusPrev(ctx, reg, 0))
	assert.False(t, rover.FocusFirst(ctx, reg))
	assert.False(t, rover.FocusLast(ctx, reg))
}

func TestRover_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	targets := []*mocks.MockFocusTarget{
		mocks.NewMockFocusTarget(ctrl),
		mocks.NewMockFocusTarget(ctrl),
		mocks.NewMockFocusTarget(ctrl),
	}
	reg := entity.NewRegistry()
	for i, target := range targets {
		reg.Register(entity.TabIndex(i), entity.TabRecord{Handle: target})
	}

	gomock.InOrder(
		targets[2].EXPECT().Focus(gomock.Any()), // prev from 0 wraps
		targets[0].EXPECT().Focus(gomock.Any()), // next from 2 wraps
		targets[0].EXPECT().Focus(gomock.Any()), // first
		targets[2].EXPECT().Focus(gomock.Any()), // last
	)

	rover := focus.NewRover(entity.FocusOptions{})
	ctx := context.Background()
	assert.True(t, rover.Handle(ctx, reg, entity.CommandPrev, 0))
	assert.True(t, rover.Handle(ctx, reg, entity.CommandNext, 2))
	assert.True(t, rover.Handle(ctx, reg, entity.CommandFirst, 1))
	assert.True(t, rover.Handle(ctx, reg, entity.CommandLast, 1))
	assert.False(t, rover.Handle(ctx, reg, entity.CommandDelete, 1))
}
