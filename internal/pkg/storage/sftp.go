package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPConfig describes the remote archive host. PrivateKey is a PEM block
// and takes precedence over Password when both are set.
type SFTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	PrivateKey string
	BasePath   string
	Timeout    time.Duration
}

// SFTPStorage archives files on a remote SFTP host. A fresh session is
// dialed per operation and closed when the operation finishes.
type SFTPStorage struct {
	cfg SFTPConfig
}

func NewSFTPStorage(cfg SFTPConfig) (*SFTPStorage, error) {
	if cfg.Host == "" || cfg.Username == "" {
		return nil, fmt.Errorf("sftp storage requires a host and username")
	}
	if cfg.Password == "" && cfg.PrivateKey == "" {
		return nil, fmt.Errorf("sftp storage requires a password or private key")
	}
	if cfg.Port == 0 {
		cfg.Port = 22
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &SFTPStorage{cfg: cfg}, nil
}

func (s *SFTPStorage) connect() (*ssh.Client, *sftp.Client, error) {
	var auth ssh.AuthMethod
	if s.cfg.PrivateKey != "" {
		signer, err := ssh.ParsePrivateKey([]byte(s.cfg.PrivateKey))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse sftp private key: %w", err)
		}
		auth = ssh.PublicKeys(signer)
	} else {
		auth = ssh.Password(s.cfg.Password)
	}

	sshCfg := &ssh.ClientConfig{
		User:            s.cfg.Username,
		Auth:            []ssh.AuthMethod{auth},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         s.cfg.Timeout,
	}

	conn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port), sshCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial sftp host: %w", err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open sftp session: %w", err)
	}

	return conn, client, nil
}

// remotePath anchors the path under the configured base directory so
// relative segments cannot escape it.
func (s *SFTPStorage) remotePath(filePath string) string {
	return path.Join(s.cfg.BasePath, path.Clean("/"+filePath))
}

func (s *SFTPStorage) Upload(ctx context.Context, file io.Reader, filePath string, contentType string) (string, error) {
	conn, client, err := s.connect()
	if err != nil {
		return "", err
	}
	defer conn.Close()
	defer client.Close()

	remote := s.remotePath(filePath)
	if err := client.MkdirAll(path.Dir(remote)); err != nil {
		return "", fmt.Errorf("failed to create remote directory: %w", err)
	}

	dst, err := client.Create(remote)
	if err != nil {
		return "", fmt.Errorf("failed to create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write remote file: %w", err)
	}

	return strings.TrimPrefix(path.Clean("/"+filePath), "/"), nil
}

func (s *SFTPStorage) Download(ctx context.Context, filePath string) (io.ReadCloser, error) {
	conn, client, err := s.connect()
	if err != nil {
		return nil, err
	}

	file, err := client.Open(s.remotePath(filePath))
	if err != nil {
		client.Close()
		conn.Close()
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", filePath)
		}
		return nil, fmt.Errorf("failed to open remote file: %w", err)
	}

	return &sftpFile{File: file, client: client, conn: conn}, nil
}

func (s *SFTPStorage) Exists(ctx context.Context, filePath string) (bool, error) {
	conn, client, err := s.connect()
	if err != nil {
		return false, err
	}
	defer conn.Close()
	defer client.Close()

	if _, err := client.Stat(s.remotePath(filePath)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// sftpFile keeps the session open until the caller finishes reading.
type sftpFile struct {
	*sftp.File
	client *sftp.Client
	conn   *ssh.Client
}

func (f *sftpFile) Close() error {
	err := f.File.Close()
	f.client.Close()
	f.conn.Close()
	return err
}
