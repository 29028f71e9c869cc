package admin

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/internal/dataset"
	"gitee.com/taoJie_1/bank-agent/task"
	"gitee.com/taoJie_1/bank-agent/utils"
)

const (
	// MaxUploadSize 最大上传文件大小，10MB
	MaxUploadSize = 10 * 1024 * 1024
)

// UploadService 定义数据集上传操作的接口
type UploadService interface {
	// UploadDataset 校验并导入上传的数据集CSV, 返回导入的记录数
	UploadDataset(file *multipart.FileHeader) (int, error)
}

type uploadService struct {
	taskManager *task.Manager
}

// NewUploadService 创建一个新的 UploadService 实例
func NewUploadService(tm *task.Manager) UploadService {
	return &uploadService{taskManager: tm}
}

// UploadDataset 处理数据集上传: 解析校验 -> 落盘 -> 入库 -> OSS备份
func (s *uploadService) UploadDataset(file *multipart.FileHeader) (int, error) {
	// 1. 验证文件大小与扩展名
	if file.Size > MaxUploadSize {
		return 0, fmt.Errorf("文件大小超过限制 (%.2f MB)", float64(MaxUploadSize)/1024/1024)
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return 0, fmt.Errorf("不支持的文件类型: %s", filepath.Ext(file.Filename))
	}

	src, err := file.Open()
	if err != nil {
		return 0, fmt.Errorf("无法打开文件: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("读取文件内容失败: %w", err)
	}

	// 2. 先整体解析校验, 坏文件不落盘
	set, err := dataset.Parse(strings.NewReader(string(content)))
	if err != nil {
		return 0, fmt.Errorf("数据集格式校验失败: %w", err)
	}

	// 3. 落盘到上传目录并替换当前数据集文件
	uploadDir := global.Config.Dataset.UploadDir
	if uploadDir != "" {
		archive := filepath.Join(uploadDir, utils.HashBytes(content)+".csv")
		if err := utils.Mkdir(archive); err != nil {
			return 0, fmt.Errorf("创建上传目录失败: %w", err)
		}
		if err := os.WriteFile(archive, content, 0644); err != nil {
			return 0, fmt.Errorf("归档上传文件失败: %w", err)
		}
	}
	if err := utils.Mkdir(global.Config.Dataset.CsvPath); err != nil {
		return 0, fmt.Errorf("创建数据集目录失败: %w", err)
	}
	if err := os.WriteFile(global.Config.Dataset.CsvPath, content, 0644); err != nil {
		return 0, fmt.Errorf("替换数据集文件失败: %w", err)
	}

	// 4. 同步导入数据库与内存
	if err := s.taskManager.ImportDataset(set); err != nil {
		return 0, err
	}

	// 5. 异步备份到OSS, 失败不影响导入结果
	if global.OssService != nil {
		go func(name string, data []byte) {
			objectKey, err := global.OssService.UploadBytes(name, data)
			if err != nil {
				global.Log.Warnf("[upload]数据集备份到OSS失败: %v", err)
				return
			}
			global.Log.Infof("[upload]数据集已备份至 %s", global.OssService.GetURL(objectKey))
		}(filepath.Base(file.Filename), content)
	}

	return len(set.Records), nil
}
