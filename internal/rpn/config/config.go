package config

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/treeforest/logger"
	"github.com/treeforest/rpn/internal/rpn/diag"
	"github.com/treeforest/rpn/internal/rpn/script"
	"github.com/treeforest/rpn/internal/rpn/stack"
	"gopkg.in/yaml.v3"
)

const (
	ModeProduction = "production"
	ModeTest       = "test"
)

var (
	path *string
)

func init() {
	path = flag.String("conf", "config.yaml", "firmware config path")
}

type Config struct {
	Mode         string     `yaml:"mode"`          // 运行模式: production 或 test
	Capacity     int        `yaml:"capacity"`      // 操作数栈容量
	Debug        bool       `yaml:"debug"`         // 输出调试日志
	Color        bool       `yaml:"color"`         // 诊断结果着色
	Verbose      bool       `yaml:"verbose"`       // 失败时输出栈内容
	IdleInterval string     `yaml:"idle_interval"` // 空闲循环间隔，如 500ms
	Cases        []CaseSpec `yaml:"cases"`         // 额外的诊断用例
}

// CaseSpec 配置文件中的诊断用例
type CaseSpec struct {
	Name     string   `yaml:"name"`
	Capacity int      `yaml:"capacity"`
	With     string   `yaml:"with"`
	Script   string   `yaml:"script"`
	Want     WantSpec `yaml:"want"`
}

type WantSpec struct {
	Len      int     `yaml:"len"`
	Cap      int     `yaml:"cap"`
	Contents *string `yaml:"contents"`
	Output   *string `yaml:"output"`
	Err      string  `yaml:"err"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:         ModeProduction,
		Capacity:     stack.DefaultCapacity,
		Debug:        false,
		Color:        true,
		Verbose:      false,
		IdleInterval: "500ms",
		Cases:        []CaseSpec{},
	}
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate 校验配置项
func (c *Config) Validate() error {
	if c.Mode != ModeProduction && c.Mode != ModeTest {
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.Capacity <= 0 {
		return errors.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	_, err := c.DiagCases()
	return err
}

// Interval parses IdleInterval.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.IdleInterval)
	if err != nil {
		return 0, errors.Wrap(err, "idle_interval")
	}
	if d <= 0 {
		return 0, errors.Errorf("idle_interval must be positive, got %s", d)
	}
	return d, nil
}

// DiagCases converts the configured cases. A case without a capacity uses
// the configured stack capacity.
func (c *Config) DiagCases() ([]diag.Case, error) {
	cases := make([]diag.Case, 0, len(c.Cases))
	for i, spec := range c.Cases {
		dc, err := spec.toCase(c.Capacity)
		if err != nil {
			return nil, errors.Wrapf(err, "cases[%d]", i)
		}
		cases = append(cases, dc)
	}
	return cases, nil
}

func (s CaseSpec) toCase(capacity int) (diag.Case, error) {
	dc := diag.Case{Name: s.Name, Capacity: s.Capacity, Script: s.Script}
	if dc.Name == "" {
		return dc, errors.New("name is required")
	}
	if dc.Capacity == 0 {
		dc.Capacity = capacity
	}
	if _, err := script.Parse(s.Script); err != nil {
		return dc, errors.Wrap(err, "script")
	}

	var err error
	if dc.With, err = script.ParseEntries(s.With); err != nil {
		return dc, errors.Wrap(err, "with")
	}
	dc.Want.Len = s.Want.Len
	dc.Want.Cap = s.Want.Cap
	if s.Want.Contents != nil {
		if dc.Want.Contents, err = script.ParseEntries(*s.Want.Contents); err != nil {
			return dc, errors.Wrap(err, "want.contents")
		}
	}
	if s.Want.Output != nil {
		if dc.Want.Output, err = script.ParseEntries(*s.Want.Output); err != nil {
			return dc, errors.Wrap(err, "want.output")
		}
	}
	if s.Want.Err != "" {
		k, ok := stack.ParseKind(s.Want.Err)
		if !ok {
			return dc, errors.Errorf("unknown error kind %q", s.Want.Err)
		}
		dc.Want.Err = k
	}
	return dc, nil
}

// Load 读取配置文件，文件不存在时使用默认配置
func Load(path string) (*Config, error) {
	conf := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.WithStack(err)
		}
		log.Warnf("config file %s not found, using defaults", path)
	} else if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}

	if err = conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	data, _ = conf.Marshal()
	log.Debug("config:\n", string(data))
	return conf, nil
}

// LoadFlag parses the command line and loads the file named by -conf.
func LoadFlag() (*Config, error) {
	flag.Parse()
	return Load(*path)
}
