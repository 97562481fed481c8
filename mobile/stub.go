//go:build !mobile

// 普通构建时 mobile 包只有这个文件
// ebitenmobile bind 使用 -tags mobile 编译 mobile.go 和 embed.go
package mobile

// Dummy 让包在桌面构建中也能被 go vet 和 go test ./... 引用
func Dummy() {}
