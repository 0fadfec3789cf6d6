package types

import "errors"

var (
	// ErrInvalidConfiguration 配置缺失或非法（启动期致命，影响对应的关卡/武器）
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNilCollaborator 必需的协作者（配置、类型参数）为空，属于编程错误
	ErrNilCollaborator = errors.New("nil collaborator")
)
