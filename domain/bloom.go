package domain

import "context"

type BloomRepository interface {
	// Add 将 ID 加入过滤器
	Add(ctx context.Context, id string) error

	// Exists 检查 ID 是否可能存在
	// 返回 true: 可能存在 (需要进一步查 DB)
	// 返回 false: 绝对不存在
	// 过滤器被禁用时总是返回 true
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd 用于大量添加 ID
	BulkAdd(ctx context.Context, ids []string) error

	// Disable 标记过滤器缺少ID, 所有实例共享, 递增禁用计数
	Disable(ctx context.Context) error

	// DisabledVersion 返回当前禁用计数, 未禁用过为0
	DisabledVersion(ctx context.Context) (int64, error)

	// Enable 禁用计数仍等于version时恢复过滤器, 期间有新的Disable则返回false
	Enable(ctx context.Context, version int64) (bool, error)
}
