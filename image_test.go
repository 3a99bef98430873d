package fatnav

import (
	"errors"
	"testing"
)

func TestImage_U16(t *testing.T) {
	img := Image{0x34, 0x12, 0xFF}

	tests := []struct {
		name    string
		offset  int64
		want    uint16
		wantErr error
	}{
		{
			name:   "little endian",
			offset: 0,
			want:   0x1234,
		},
		{
			name:   "second byte",
			offset: 1,
			want:   0xFF12,
		},
		{
			name:    "reaches beyond the end",
			offset:  2,
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "negative offset",
			offset:  -1,
			wantErr: ErrOutOfBounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := img.U16(tt.offset)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Image.U16() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Image.U16() = %#04x, want %#04x", got, tt.want)
			}
		})
	}
}

func TestImage_U32(t *testing.T) {
	img := Image{0x78, 0x56, 0x34, 0x12}

	tests := []struct {
		name    string
		offset  int64
		want    uint32
		wantErr error
	}{
		{
			name:   "little endian",
			offset: 0,
			want:   0x12345678,
		},
		{
			name:    "reaches beyond the end",
			offset:  1,
			wantErr: ErrOutOfBounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := img.U32(tt.offset)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Image.U32() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Image.U32() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestImage_U8(t *testing.T) {
	img := Image{0xAB}

	got, err := img.U8(0)
	if err != nil {
		t.Fatalf("Image.U8() error = %v", err)
	}
	if got != 0xAB {
		t.Errorf("Image.U8() = %#02x, want 0xab", got)
	}

	if _, err := img.U8(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Image.U8() error = %v, want ErrOutOfBounds", err)
	}
}

func TestImage_Slice(t *testing.T) {
	img := Image{1, 2, 3, 4}

	tests := []struct {
		name    string
		offset  int64
		length  int64
		wantLen int
		wantErr error
	}{
		{
			name:    "whole image",
			offset:  0,
			length:  4,
			wantLen: 4,
		},
		{
			name:    "empty slice at the end",
			offset:  4,
			length:  0,
			wantLen: 0,
		},
		{
			name:    "reaches beyond the end",
			offset:  3,
			length:  2,
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "negative length",
			offset:  0,
			length:  -1,
			wantErr: ErrOutOfBounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := img.Slice(tt.offset, tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Image.Slice() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(got) != tt.wantLen {
				t.Errorf("Image.Slice() length = %v, want %v", len(got), tt.wantLen)
			}
		})
	}
}
