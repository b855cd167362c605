package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "zero page clamps to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "invalid size uses default", page: 2, size: 0, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "oversized size uses default", page: 1, size: 500, wantOffset: 0, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
	}
	if info.TotalItems != 45 {
		t.Errorf("TotalItems = %d, want 45", info.TotalItems)
	}

	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 1 {
		t.Errorf("empty TotalPages = %d, want 1", empty.TotalPages)
	}

	beyond := NewPaginationInfo(10, 9, 10)
	if beyond.CurrentPage != 1 {
		t.Errorf("page beyond end CurrentPage = %d, want 1", beyond.CurrentPage)
	}
}
