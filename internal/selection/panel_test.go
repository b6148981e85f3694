package selection

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payroll struct {
	ID     string
	Number string
}

type line struct {
	PayrollID string
	Employee  string
}

func payrollID(p payroll) string { return p.ID }

func TestPanel_SelectLoadsChildren(t *testing.T) {
	load := func(_ context.Context, parentID string) ([]line, error) {
		return []line{{PayrollID: parentID, Employee: "M. Reyes"}}, nil
	}
	p := NewPanel(payrollID, load)

	p.Select(context.Background(), payroll{ID: "cp-1", Number: "2024-018"})

	sel, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "cp-1", sel.ID)
	require.Len(t, p.Children(), 1)
	assert.Equal(t, "cp-1", p.Children()[0].PayrollID)
}

func TestPanel_ClearResetsState(t *testing.T) {
	load := func(_ context.Context, parentID string) ([]line, error) {
		return []line{{PayrollID: parentID}}, nil
	}
	p := NewPanel(payrollID, load)
	p.Select(context.Background(), payroll{ID: "cp-1"})
	p.Clear()

	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Empty(t, p.Children())
}

func TestPanel_LoadErrorLeavesChildrenEmpty(t *testing.T) {
	load := func(_ context.Context, _ string) ([]line, error) {
		return nil, fmt.Errorf("fetch failed")
	}
	p := NewPanel(payrollID, load)
	p.Select(context.Background(), payroll{ID: "cp-1"})

	_, ok := p.Selected()
	assert.True(t, ok, "selection takes effect even when the child load fails")
	assert.Empty(t, p.Children())
}

func TestPanel_StaleLoadDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	load := func(_ context.Context, parentID string) ([]line, error) {
		if parentID == "cp-A" {
			close(started)
			<-release // hold the A load until B has completed
		}
		return []line{{PayrollID: parentID}}, nil
	}
	p := NewPanel(payrollID, load)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Select(context.Background(), payroll{ID: "cp-A"})
	}()

	<-started
	p.Select(context.Background(), payroll{ID: "cp-B"})
	close(release)
	wg.Wait()

	children := p.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "cp-B", children[0].PayrollID, "the stale cp-A load must be discarded")
}

func TestPanel_NilLoader(t *testing.T) {
	p := NewPanel[payroll, line](payrollID, nil)
	p.Select(context.Background(), payroll{ID: "cp-1"})

	_, ok := p.Selected()
	assert.True(t, ok)
	assert.Empty(t, p.Children())
}

func TestPanel_NewSelectionDiscardsOldChildren(t *testing.T) {
	load := func(_ context.Context, parentID string) ([]line, error) {
		if parentID == "cp-2" {
			return nil, fmt.Errorf("unavailable")
		}
		return []line{{PayrollID: parentID}}, nil
	}
	p := NewPanel(payrollID, load)
	p.Select(context.Background(), payroll{ID: "cp-1"})
	require.NotEmpty(t, p.Children())

	p.Select(context.Background(), payroll{ID: "cp-2"})
	assert.Empty(t, p.Children(), "old child list is discarded when the selection changes")
}
