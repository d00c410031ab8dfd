// Package interaction 实现场景交互解析器
//
// 两项职责：
//   - 拾取解析：把渲染/拾取系统给出的面材质索引映射为语义标签（FaceTable + State）
//   - 连续装饰变换：每帧根据时间和归一化指针位置计算装饰元素的变换（PulseRig / CubeRig）
//
// 本包只计算数值，不做任何绘制调用。
package interaction

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// FaceCount 立方体面数（材质索引 0..5）
const FaceCount = 6

// ErrInvalidPickIndex 拾取事件的面索引超出标签表范围
// 这是拾取系统与标签表之间的集成错误，调用方不应吞掉它
var ErrInvalidPickIndex = errors.New("invalid pick index")

// PickError 携带越界索引的拾取错误，errors.Is(err, ErrInvalidPickIndex) 为真
type PickError struct {
	Index int
}

func (e *PickError) Error() string {
	return fmt.Sprintf("%v: face index %d outside [0,%d]", ErrInvalidPickIndex, e.Index, FaceCount-1)
}

func (e *PickError) Unwrap() error {
	return ErrInvalidPickIndex
}

// PickEvent 外部拾取系统产生的事件
type PickEvent struct {
	FaceIndex int
}

// FaceTable 面材质索引到标签的固定映射（定长表 + 显式边界检查）
// 不同立方体实例之间标签可以重复
type FaceTable [FaceCount]string

// DefaultFaces 首页立方体的默认标签
var DefaultFaces = FaceTable{
	"E-Commerce",
	"3D Experiences",
	"Attention To Detail",
	"Luxury Branding",
	"Portfolio Sites",
	"Custom Apps",
}

// NewFaceTable 从配置标签创建映射表
// 必须恰好 6 个非空标签
func NewFaceTable(labels []string) (FaceTable, error) {
	var table FaceTable
	if len(labels) != FaceCount {
		return table, fmt.Errorf("face table needs exactly %d labels, got %d", FaceCount, len(labels))
	}
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return table, fmt.Errorf("face label %d is empty", i)
		}
		table[i] = label
	}
	return table, nil
}

// Resolve 解析面索引
// 越界索引返回 *PickError，不做截断也不回退到默认标签
func (t FaceTable) Resolve(index int) (string, error) {
	if index < 0 || index >= FaceCount {
		err := &PickError{Index: index}
		log.Printf("[Resolver] ERROR: %v", err)
		return "", err
	}
	return t[index], nil
}

// Contains 判断标签是否属于本表
func (t FaceTable) Contains(label string) bool {
	for _, l := range t {
		if l == label {
			return true
		}
	}
	return false
}
