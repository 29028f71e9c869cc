package oss

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"gitee.com/taoJie_1/bank-agent/model/config"
	"gitee.com/taoJie_1/bank-agent/utils"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Service 定义对象存储服务的接口, 用于训练数据集的远端备份
type Service interface {
	// UploadFile 上传multipart表单中的文件, 返回对象键
	UploadFile(file *multipart.FileHeader) (string, error)
	// UploadBytes 上传原始字节内容, 返回对象键
	UploadBytes(name string, data []byte) (string, error)
	// GetURL 为给定的对象键生成可公开访问的URL
	GetURL(objectKey string) string
	// Close 关闭底层客户端连接
	Close() error
}

type aliyunOssService struct {
	client   *oss.Client
	config   config.Oss
	location *time.Location // 注入时区信息
}

// NewClient 创建一个新的OSS服务客户端
func NewClient(cfg config.Oss, location *time.Location) (Service, error) {
	// OSS SDK的Endpoint不包含协议头, 如果配置中包含了协议头, 需要去除
	endpoint := cfg.Endpoint
	if strings.HasPrefix(endpoint, "http://") {
		endpoint = strings.TrimPrefix(endpoint, "http://")
	} else if strings.HasPrefix(endpoint, "https://") {
		endpoint = strings.TrimPrefix(endpoint, "https://")
	}

	client, err := oss.New(endpoint, cfg.AccessKeyId, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("创建阿里云OSS客户端失败: %w", err)
	}

	return &aliyunOssService{
		client:   client,
		config:   cfg,
		location: location,
	}, nil
}

func (s *aliyunOssService) UploadFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	// 读取文件内容用于哈希
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("读取文件内容失败: %w", err)
	}

	// 以内容哈希命名, 相同文件重复上传不会产生冗余对象
	fileName := utils.HashBytes(fileBytes) + filepath.Ext(file.Filename)
	return s.put(fileName, fileBytes)
}

func (s *aliyunOssService) UploadBytes(name string, data []byte) (string, error) {
	return s.put(name, data)
}

func (s *aliyunOssService) put(fileName string, data []byte) (string, error) {
	bucket, err := s.client.Bucket(s.config.Bucket)
	if err != nil {
		return "", fmt.Errorf("获取OSS Bucket失败: %w", err)
	}

	// 按日期分目录, 便于人工排查备份
	objectKey := fmt.Sprintf("datasets/%s/%s", time.Now().In(s.location).Format("20060102"), fileName)

	if err := bucket.PutObject(objectKey, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("上传文件到OSS失败: %w", err)
	}
	return objectKey, nil
}

func (s *aliyunOssService) GetURL(objectKey string) string {
	if s.config.Domain != "" {
		// 如果Domain已经包含协议, 直接使用
		cdnURL, err := url.Parse(s.config.Domain)
		if err == nil {
			// 确保路径拼接正确, 避免双斜杠或丢失斜杠
			cdnURL.Path = strings.TrimSuffix(cdnURL.Path, "/") + "/" + strings.TrimPrefix(objectKey, "/")
			return cdnURL.String()
		}
		// 如果解析失败, 回退到简单拼接
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.Domain, "/"), strings.TrimPrefix(objectKey, "/"))
	}
	// 回退到原始OSS URL
	return fmt.Sprintf("https://%s.%s/%s", s.config.Bucket, s.config.Endpoint, objectKey)
}

func (s *aliyunOssService) Close() error {
	// aliyun-oss-go-sdk客户端不需要显式关闭连接
	return nil
}
