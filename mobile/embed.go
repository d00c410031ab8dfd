//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/site.yaml 是根目录 data/site.yaml 的副本，修改站点配置后需同步：
//
//	cp data/site.yaml mobile/data/site.yaml
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/site.yaml
var dataFS embed.FS
