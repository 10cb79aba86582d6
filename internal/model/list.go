package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList はJSON配列としてカラムに保存される文字列のリスト
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return marshalList(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanList(src, l)
}

// IntList はJSON配列としてカラムに保存される整数のリスト
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	return marshalList(l)
}

func (l *IntList) Scan(src interface{}) error {
	return scanList(src, l)
}

func marshalList[T any](l []T) (driver.Value, error) {
	if l == nil {
		l = []T{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanList(src interface{}, dst interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
