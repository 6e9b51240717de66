// Package resumemd parses résumé Markdown into a structured model, writes the
// model back as canonical Markdown, and lays it out into A4 pages.
//
// # Parsing and Serializing
//
//	r, err := resumemd.Parse(markdown)
//	if err != nil {
//	    log.Fatal(err) // only when the Markdown tree builder itself fails
//	}
//	canonical, _ := resumemd.Serialize(r)
//
// Parse never rejects malformed input: unknown sections are skipped and
// items without a known key are treated as plain text. ParseWithWarnings
// also reports what was skipped.
//
// The dialect:
//
//	---
//	email: zhangsan@example.com
//	---
//	# 张三
//	## 核心能力
//	- Go
//	## 工作经历
//	### 工程师 ｜ 字节跳动 ｜ 2020–至今
//	- responsibility: 负责推荐系统
//	#### 推荐平台
//	- summary: 在线推荐服务
//	- stack: Go, Kafka
//	- contributions:
//	  - 设计召回链路
//	## 教育经历
//	- 北京大学 ｜ 计算机 ｜ 本科 ｜ 毕业：2016
//
// Serialize always emits this canonical form, and Parse(Serialize(r))
// reproduces r.
//
// # Pagination
//
// Paginate assigns measured blocks to pages greedily and returns the
// indices that start a new page. It is a pure function of the block sizes and
// the page capacity; Paginator adds memoization of the last result.
//
// # Conversion
//
// Converter renders the model into HTML blocks, measures them in headless
// Chrome, paginates and prints an A4 PDF:
//
//	conv, err := resumemd.NewConverter(
//	    resumemd.WithTimeout(time.Minute),
//	    resumemd.WithTypography(resumemd.DefaultTypography()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, resumemd.Input{Markdown: markdown})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("resume.pdf", result.PDF, 0644)
//
// For batch conversion, ConverterPool manages one browser per worker:
//
//	pool := resumemd.NewConverterPool(resumemd.ResolvePoolSize(0))
//	defer pool.Close()
//
// # Errors
//
// Errors wrap the sentinels in this package; test them with errors.Is.
// ErrParse, ErrInvalidTypography and ErrNilResume concern the model; the
// browser errors (ErrBrowserConnect, ErrPageLoad, ErrMeasure,
// ErrPDFGeneration) concern conversion.
package resumemd
