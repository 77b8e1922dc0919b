package pager_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"line-task-tracker/internal/pager"
	"line-task-tracker/internal/state"
)

func rows(n int) []pager.Row {
	out := make([]pager.Row, n)
	for i := range out {
		out[i] = pager.Row{"2024-05-01", fmt.Sprintf("task %d", i), "-", "PENDING"}
	}
	return out
}

func newPager() *pager.Pager {
	return pager.New(state.NewMemory[pager.Cursor](state.Options{}))
}

func TestPager_SeventeenRows(t *testing.T) {
	p := newPager()

	first := p.Start("u1", pager.KeyMinePending, rows(17), "งานค้าง")
	assert.Equal(t, 3, first.Total)
	assert.Equal(t, 0, first.Index)
	assert.Len(t, first.Rows, 8)
	assert.Equal(t, "งานค้าง — หน้า 1/3", first.Title)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	_, _ = p.Advance("u1", 1)
	last, ok := p.Advance("u1", 1)
	require.True(t, ok)
	assert.Equal(t, 2, last.Index)
	assert.Len(t, last.Rows, 1)
	assert.Equal(t, "task 16", last.Rows[0][1])
	assert.False(t, last.HasNext())

	clamped, _ := p.Advance("u1", 1)
	assert.Equal(t, 2, clamped.Index, "advancing past the last page is a no-op")

	for i := 0; i < 5; i++ {
		clamped, _ = p.Advance("u1", -1)
	}
	assert.Equal(t, 0, clamped.Index, "advancing before the first page is a no-op")
}

func TestPager_EmptyListHasOnePage(t *testing.T) {
	p := newPager()
	pg := p.Start("u1", "other", nil, "ว่าง")
	assert.Equal(t, 1, pg.Total)
	assert.Empty(t, pg.Rows)
	assert.Equal(t, pager.Row{"วันที่", "รายการ", "กำหนดส่ง", "สถานะ"}, pg.Headers)
}

func TestPager_NewListReplacesCursor(t *testing.T) {
	p := newPager()
	p.Start("u1", pager.KeyMinePending, rows(17), "a")
	_, _ = p.Advance("u1", 1)

	pg := p.Start("u1", pager.KeyUsers, rows(3), "b")
	assert.Equal(t, 0, pg.Index)
	assert.Equal(t, pager.Headers(pager.KeyUsers), pg.Headers)

	again, ok := p.Render("u1")
	require.True(t, ok)
	assert.Equal(t, pager.KeyUsers, again.ListKey)
}

func TestPager_NoCursor(t *testing.T) {
	p := newPager()
	_, ok := p.Render("nobody")
	assert.False(t, ok)
	_, ok = p.Advance("nobody", 1)
	assert.False(t, ok)
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		key  string
		want pager.Row
	}{
		{pager.KeyUsers, pager.Row{"อัปเดต", "ผู้ใช้ (บทบาท)", "สถานะ", "-"}},
		{pager.KeyMineAssigned, pager.Row{"วันที่", "รายการ (#ID)", "ผู้รับ", "สถานะ"}},
		{pager.KeyToday, pager.Row{"วันที่", "รายการ (#ID)", "กำหนดส่ง", "สถานะ"}},
		{pager.KeyMineRange, pager.Row{"วันที่", "รายการ (#ID)", "กำหนดส่ง", "สถานะ"}},
		{"unknown", pager.Row{"วันที่", "รายการ", "กำหนดส่ง", "สถานะ"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, pager.Headers(tt.key))
		})
	}
}
