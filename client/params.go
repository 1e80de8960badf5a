package client

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/wangjian/alivod/auth"
)

// Params 有序的请求参数集合
// 保留插入顺序，重复 Set 同一个参数名时原位替换
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams 构建一个空的 Params
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set 设置参数
func (p *Params) Set(key, value string) *Params {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// SetIfNotZero 仅在 value 不为零值时设置参数
// []string 以逗号拼接，指针取其指向的值
func (p *Params) SetIfNotZero(key string, value interface{}) *Params {
	if s, ok := formatParam(value); ok {
		p.Set(key, s)
	}
	return p
}

// SetIfNotNil 仅在 value 不为 nil 时设置参数
// 指针指向零值时同样会设置，例如 *string 指向 "" 时发送空字符串
func (p *Params) SetIfNotNil(key string, value interface{}) *Params {
	v, ok := indirect(value)
	if !ok {
		return p
	}
	s, _ := formatValue(v)
	return p.Set(key, s)
}

// Get 获取参数
func (p *Params) Get(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Has 判断参数是否存在
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Del 删除参数
func (p *Params) Del(key string) *Params {
	if _, ok := p.values[key]; !ok {
		return p
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return p
}

// Len 参数个数
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys 按插入顺序返回参数名
func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// SortedKeys 按字典序返回参数名
func (p *Params) SortedKeys() []string {
	keys := p.Keys()
	sort.Strings(keys)
	return keys
}

// Merge 将 other 中的参数合并进来，同名参数以 other 为准
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}
	for _, key := range other.keys {
		p.Set(key, other.values[key])
	}
	return p
}

// Clone 深拷贝
func (p *Params) Clone() *Params {
	return NewParams().Merge(p)
}

// Map 转换为 map，供签名使用
func (p *Params) Map() map[string]string {
	m := make(map[string]string, len(p.values))
	for key, value := range p.values {
		m[key] = value
	}
	return m
}

// Encode 按参数名排序并以 RFC 3986 编码为查询串
func (p *Params) Encode() string {
	var builder strings.Builder
	for i, key := range p.SortedKeys() {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(auth.PercentEncode(key))
		builder.WriteByte('=')
		builder.WriteString(auth.PercentEncode(p.values[key]))
	}
	return builder.String()
}

func formatParam(value interface{}) (string, bool) {
	v, ok := indirect(value)
	if !ok {
		return "", false
	}
	return formatValue(v)
}

// indirect 解引用指针，value 为 nil 或 nil 指针时返回 false
func indirect(value interface{}) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

// formatValue 格式化参数值，第二个返回值表示是否为非零值
func formatValue(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), v.Len() > 0
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), v.Float() != 0
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "", false
		}
		items := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, fmt.Sprint(v.Index(i).Interface()))
		}
		return strings.Join(items, ","), true
	default:
		if v.IsZero() {
			return "", false
		}
		return fmt.Sprint(v.Interface()), true
	}
}
