package storage

// 画像ファイルの保存先。実体はローカルディスクだが、
// 呼び出し側は保存と削除だけを知っていればよい。
type FileStore interface {
	// カテゴリ別のディレクトリに一意な名前で保存し、参照パスを返す
	Save(data []byte, originalName string, category string) (string, error)

	// 参照パスのファイルを削除（無ければ何もしない）
	Delete(path string) error
}
