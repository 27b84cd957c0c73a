package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/domain/entity/mocks"
	"github.com/accessible-ui/tabs/internal/domain/tree"
	"github.com/accessible-ui/tabs/internal/ui/component"
)

func TestPanel_DefaultVisibility(t *testing.T) {
	tabs := newTabs(t, component.Options{})
	nodes := tabs.Mount([]*entity.Node{
		entity.TabListNode("list", entity.TabNode("a"), entity.TabNode("b")),
		entity.PanelNode("pa"),
		entity.PanelNode("pb"),
	})

	for _, n := range tree.Collect(nodes, entity.RoleTab) {
		component.NewTab(tabs, nil, component.TabProps{Index: n.Index, ID: n.Key})
	}
	var panels []*component.Panel
	for _, n := range tree.Collect(nodes, entity.RolePanel) {
		panels = append(panels, component.NewPanel(tabs, component.PanelProps{Index: n.Index}))
	}

	assert.Len(t, panels, 2)
	assert.True(t, tabs.IsActive(0))
	assert.False(t, panels[0].Hidden())
	assert.True(t, panels[1].Hidden())
	assert.Equal(t, "a", panels[0].ID())
	assert.Equal(t, "b", panels[1].ID())
}

func TestPanel_ManualActivationPullsFocusOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{ManualActivation: true, PreventScroll: true})
	triggers := mountTabs(tabs, 2)

	content0 := mocks.NewMockFocusTarget(ctrl)
	content1 := mocks.NewMockFocusTarget(ctrl)
	component.NewPanel(tabs, component.PanelProps{Index: 0, Content: content0})
	panel1 := component.NewPanel(tabs, component.PanelProps{Index: 1, Content: content1})

	content1.EXPECT().Focus(entity.FocusOptions{IncludeRoot: true, PreventScroll: true}).Times(1)

	triggers[1].Click()
	assert.False(t, panel1.Evaluate())
	assert.False(t, panel1.Evaluate())
	triggers[1].Click()

	assert.False(t, panel1.Hidden())
}

func TestPanel_ReactivationPullsAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{ManualActivation: true})
	triggers := mountTabs(tabs, 2)

	content := mocks.NewMockFocusTarget(ctrl)
	component.NewPanel(tabs, component.PanelProps{Index: 1, Content: content})

	content.EXPECT().Focus(gomock.Any()).Times(2)

	triggers[1].Click()
	triggers[0].Click()
	triggers[1].Click()
}

func TestPanel_AutomaticActivationNeverPulls(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{})
	triggers := mountTabs(tabs, 2)

	content := mocks.NewMockFocusTarget(ctrl)
	component.NewPanel(tabs, component.PanelProps{Index: 1, Content: content})
	// No Focus expectation: any call fails the test.

	triggers[1].Focused()
	assert.True(t, tabs.IsActive(1))
}

func TestPanel_ActiveAtMountDoesNotPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{ManualActivation: true})
	mountTabs(tabs, 1)

	content := mocks.NewMockFocusTarget(ctrl)
	panel := component.NewPanel(tabs, component.PanelProps{Index: 0, Content: content})

	assert.False(t, panel.Evaluate())
}

func TestPanel_ControlledChangePulls(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{Active: intPtr(0), ManualActivation: true})
	mountTabs(tabs, 2)

	content := mocks.NewMockFocusTarget(ctrl)
	component.NewPanel(tabs, component.PanelProps{Index: 1, Content: content})

	content.EXPECT().Focus(gomock.Any()).Times(1)

	assert.NoError(t, tabs.SetActive(1))
}

func TestPanel_CloseStopsWatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{ManualActivation: true})
	triggers := mountTabs(tabs, 2)

	content := mocks.NewMockFocusTarget(ctrl)
	panel := component.NewPanel(tabs, component.PanelProps{Index: 1, Content: content})
	panel.Close()
	panel.Close()

	triggers[1].Click()
	assert.False(t, panel.Evaluate())
}

func TestPanel_Attrs(t *testing.T) {
	tabs := newTabs(t, component.Options{})
	component.NewTab(tabs, nil, component.TabProps{Index: 0, ID: "t0"})
	component.NewTab(tabs, nil, component.TabProps{Index: 1, ID: "t1"})

	active := component.NewPanel(tabs, component.PanelProps{Index: 0})
	hidden := component.NewPanel(tabs, component.PanelProps{Index: 1})

	assert.Equal(t, component.PanelAttrs{ID: "t0", Hidden: false, TabIndex: 0}, active.Attrs())
	assert.Equal(t, component.PanelAttrs{ID: "t1", Hidden: true, TabIndex: -1}, hidden.Attrs())
}

func TestPanel_UpdateIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	tabs := newTabs(t, component.Options{ManualActivation: true})
	mountTabs(tabs, 2)

	content := mocks.NewMockFocusTarget(ctrl)
	panel := component.NewPanel(tabs, component.PanelProps{Index: 1, Content: content})

	content.EXPECT().Focus(gomock.Any()).Times(1)
	panel.Update(component.PanelProps{Index: 0, Content: content})

	assert.False(t, panel.Hidden())
	assert.Equal(t, entity.TabIndex(0), panel.Index())
}
