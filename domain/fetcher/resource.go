package fetcher

import "strings"

/*
Resource 描述一个远程资源以及它在本地的文件名，本地文件名是缓存的唯一标识。
*/
type Resource struct {
	URL      string
	FileName string
}

/*
NewResource 构建 Resource，fileName 为空时取 URL 最后一个 '/' 之后的部分。
*/
func NewResource(url string, fileName string) Resource {
	if len(fileName) == 0 {
		fileName = url[strings.LastIndexByte(url, '/')+1:]
	}

	return Resource{
		URL:      url,
		FileName: fileName,
	}
}

func ResourcesFromURLs(urls []string) []Resource {
	ret := make([]Resource, 0, len(urls))
	for _, url := range urls {
		ret = append(ret, NewResource(url, ""))
	}

	return ret
}
