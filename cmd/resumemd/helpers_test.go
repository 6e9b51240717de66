package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	resumemd "github.com/alnah/go-resumemd"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - fake converter, pool and environment
// ---------------------------------------------------------------------------

// fakeConverter parses the input for real and returns canned output.
type fakeConverter struct {
	mu     sync.Mutex
	err    error
	inputs []resumemd.Input
}

func (f *fakeConverter) Convert(_ context.Context, input resumemd.Input) (*resumemd.ConvertResult, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	r, warnings, err := resumemd.ParseWithWarnings(input.Markdown)
	if err != nil {
		return nil, err
	}
	return &resumemd.ConvertResult{
		Resume:   r,
		Warnings: warnings,
		Blocks:   make([]resumemd.PreviewBlock, 3),
		Breaks:   []int{2},
		HTML:     []byte("<html>" + r.Basics.Name + "</html>"),
		PDF:      []byte("%PDF-1.4 " + r.Basics.Name),
	}, nil
}

func (f *fakeConverter) received() []resumemd.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]resumemd.Input(nil), f.inputs...)
}

// fakePool hands out a single shared fakeConverter.
type fakePool struct {
	mu         sync.Mutex
	conv       *fakeConverter
	size       int
	acquireErr error
	opts       int
	closed     int
	released   int
}

func (p *fakePool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *fakePool) Release(CLIConverter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *fakePool) Size() int { return p.size }

func (p *fakePool) Close() error {
	p.mu.Lock()
	p.closed++
	p.mu.Unlock()
	return nil
}

// testEnv returns an environment with captured output, the given variables
// and a fake pool.
func testEnv(t *testing.T, vars map[string]string) (*Environment, *fakePool, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	pool := &fakePool{conv: &fakeConverter{}}
	env := &Environment{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		NewPool: func(size int, opts ...resumemd.Option) Pool {
			pool.size = size
			pool.opts = len(opts)
			return pool
		},
	}
	return env, pool, &stdout, &stderr
}

// writeTestFile writes content under dir, creating parents, and returns the path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

const sampleResume = `---
email: zhangsan@example.com
---

# 张三

## 核心能力

- Go
- 分布式系统

## 工作经历

### 后端工程师 ｜ 字节跳动 ｜ 2020.01–2023.06

#### 推荐引擎

- 描述：召回服务
- 技术栈：Go
- 贡献：
  - 设计接口

## 教育经历

- 北京大学 ｜ 计算机 ｜ 本科 ｜ 2016
`
