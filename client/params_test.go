//go:build unit
// +build unit

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsOrder(t *testing.T) {
	ast := assert.New(t)
	params := NewParams().Set("b", "2").Set("a", "1").Set("c", "3")
	ast.Equal([]string{"b", "a", "c"}, params.Keys())
	ast.Equal([]string{"a", "b", "c"}, params.SortedKeys())

	params.Set("b", "20")
	ast.Equal([]string{"b", "a", "c"}, params.Keys())
	value, ok := params.Get("b")
	ast.True(ok)
	ast.Equal("20", value)

	params.Del("a").Del("missing")
	ast.Equal([]string{"b", "c"}, params.Keys())
	ast.Equal(2, params.Len())
	ast.False(params.Has("a"))
}

func TestParamsEncodeIgnoresInsertionOrder(t *testing.T) {
	ast := assert.New(t)
	first := NewParams().Set("Title", "my video").Set("Action", "CreateUploadVideo").Set("Tags", "a,b")
	second := NewParams().Set("Tags", "a,b").Set("Title", "my video").Set("Action", "CreateUploadVideo")
	ast.Equal("Action=CreateUploadVideo&Tags=a%2Cb&Title=my%20video", first.Encode())
	ast.Equal(first.Encode(), second.Encode())
}

func TestParamsSetIfNotZero(t *testing.T) {
	ast := assert.New(t)
	var nilString *string
	title := "title"
	empty := ""

	params := NewParams().
		SetIfNotZero("EmptyString", "").
		SetIfNotZero("Zero", 0).
		SetIfNotZero("False", false).
		SetIfNotZero("NilPointer", nilString).
		SetIfNotZero("EmptySlice", []string{}).
		SetIfNotZero("Nil", nil).
		SetIfNotZero("EmptyPointer", &empty).
		SetIfNotZero("Title", &title).
		SetIfNotZero("CateId", int64(12)).
		SetIfNotZero("Tags", []string{"a", "b"}).
		SetIfNotZero("True", true).
		SetIfNotZero("Ratio", 0.5)

	ast.Equal([]string{"Title", "CateId", "Tags", "True", "Ratio"}, params.Keys())
	ast.Equal(map[string]string{
		"Title":  "title",
		"CateId": "12",
		"Tags":   "a,b",
		"True":   "true",
		"Ratio":  "0.5",
	}, params.Map())
}

func TestParamsSetIfNotNil(t *testing.T) {
	ast := assert.New(t)
	var nilString *string
	title := "title"
	empty := ""

	params := NewParams().
		SetIfNotNil("NilPointer", nilString).
		SetIfNotNil("Nil", nil).
		SetIfNotNil("EmptyPointer", &empty).
		SetIfNotNil("Title", &title).
		SetIfNotNil("Tags", []string{"a", "b"})

	ast.Equal([]string{"EmptyPointer", "Title", "Tags"}, params.Keys())
	ast.Equal(map[string]string{
		"EmptyPointer": "",
		"Title":        "title",
		"Tags":         "a,b",
	}, params.Map())
}

func TestParamsMergeAndClone(t *testing.T) {
	ast := assert.New(t)
	base := NewParams().Set("Format", "JSON").Set("Action", "x")
	override := NewParams().Set("Action", "GetVideoInfo").Set("VideoId", "v1")

	clone := base.Clone()
	base.Merge(override).Merge(nil)
	ast.Equal([]string{"Format", "Action", "VideoId"}, base.Keys())
	value, _ := base.Get("Action")
	ast.Equal("GetVideoInfo", value)

	value, _ = clone.Get("Action")
	ast.Equal("x", value)
	ast.Equal(2, clone.Len())

	var zero Params
	zero.Set("a", "b")
	ast.Equal(1, zero.Len())
}
