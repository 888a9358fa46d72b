//file: internal/sink/nats.go

package sink

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nkeys"

	"psforge/config"
	"psforge/internal/logger"
)

// Header names carried on published scaffold messages. Consumers check the
// public-key/signature pair to verify payload integrity.
const (
	HeaderMsgID        = "Nats-Msg-Id"
	HeaderPublicKey    = "Nats-Public-Key"
	HeaderSignature    = "Nats-Signature"
	HeaderScaffoldName = "Scaffold-Name"
	HeaderContentType  = "Content-Type"
)

const scaffoldContentType = "text/x-powershell"

// Reconnection tuning for a short-lived publisher.
const (
	natsMaxReconnects = 3
	natsReconnectWait = 250 * time.Millisecond
)

// NATSSink publishes artifacts to a subject. When a signing seed is
// configured each payload is signed and the signature travels in headers.
type NATSSink struct {
	conn    *nats.Conn
	subject string
	signer  nkeys.KeyPair
	logger  *logger.Logger
}

// NewNATSSink establishes the connection and prepares the optional
// signing key.
func NewNATSSink(cfg *config.NATSConfig, log *logger.Logger) (*NATSSink, error) {
	log.Info("connecting to NATS", "urls", cfg.URLs)

	opts, err := buildNATSOptions(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build NATS options: %w", err)
	}

	nc, err := nats.Connect(strings.Join(cfg.URLs, ","), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Info("NATS connection established", "connectedURL", nc.ConnectedUrl())

	var signer nkeys.KeyPair
	if cfg.SigningSeedFile != "" {
		signer, err = loadSigner(cfg.SigningSeedFile)
		if err != nil {
			nc.Close()
			return nil, err
		}
		pub, _ := signer.PublicKey()
		log.Info("artifact signing enabled", "publicKey", pub)
	}

	return &NATSSink{
		conn:    nc,
		subject: cfg.Subject,
		signer:  signer,
		logger:  log,
	}, nil
}

func (s *NATSSink) Name() string { return "nats (" + s.subject + ")" }

// Deliver publishes one artifact with identification and, when signing is
// configured, signature headers.
func (s *NATSSink) Deliver(ctx context.Context, artifact Artifact) error {
	msg := nats.NewMsg(s.subject)
	msg.Data = []byte(artifact.Content)
	msg.Header.Set(HeaderMsgID, uuid.NewString())
	msg.Header.Set(HeaderScaffoldName, artifact.Name)
	msg.Header.Set(HeaderContentType, scaffoldContentType)

	if s.signer != nil {
		if err := signMessage(msg, s.signer); err != nil {
			return err
		}
	}

	if err := s.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish artifact: %w", err)
	}
	if err := s.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush publish: %w", err)
	}

	s.logger.Info("artifact published",
		"subject", s.subject,
		"scaffold", artifact.Name,
		"bytes", len(msg.Data))
	return nil
}

// Close drains the connection so in-flight publishes complete.
func (s *NATSSink) Close() error {
	s.logger.Info("closing NATS connection")
	if err := s.conn.Drain(); err != nil {
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}

// signMessage signs the payload and attaches the verification headers.
func signMessage(msg *nats.Msg, signer nkeys.KeyPair) error {
	sig, err := signer.Sign(msg.Data)
	if err != nil {
		return fmt.Errorf("failed to sign artifact: %w", err)
	}
	pub, err := signer.PublicKey()
	if err != nil {
		return fmt.Errorf("failed to derive signing public key: %w", err)
	}
	msg.Header.Set(HeaderPublicKey, pub)
	msg.Header.Set(HeaderSignature, base64.StdEncoding.EncodeToString(sig))
	return nil
}

// loadSigner reads an nkeys seed file. User seeds start with SU.
func loadSigner(path string) (nkeys.KeyPair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signing seed file: %w", err)
	}
	kp, err := nkeys.FromSeed([]byte(strings.TrimSpace(string(raw))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing seed: %w", err)
	}
	return kp, nil
}

// buildNATSOptions creates connection options with auth and TLS settings.
func buildNATSOptions(cfg *config.NATSConfig, log *logger.Logger) ([]nats.Option, error) {
	opts := []nats.Option{
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("NATS connection closed", "error", nc.LastError())
		}),
		nats.MaxReconnects(natsMaxReconnects),
		nats.ReconnectWait(natsReconnectWait),
	}

	// Authentication methods in precedence order. Config validation
	// guarantees at most one is set.
	if cfg.CredsFile != "" {
		opts = append(opts, nats.UserCredentials(cfg.CredsFile))
	} else if cfg.NKey != "" {
		opts = append(opts, nats.Nkey(cfg.NKey, nil))
	} else if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	} else if cfg.Username != "" {
		opts = append(opts, nats.UserInfo(cfg.Username, cfg.Password))
	}

	if cfg.TLS.Enable {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: cfg.TLS.Insecure,
		}

		if cfg.TLS.CertFile != "" && cfg.TLS.KeyFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load TLS cert/key pair: %w", err)
			}
			tlsConfig.Certificates = []tls.Certificate{cert}
		}

		if cfg.TLS.CAFile != "" {
			opts = append(opts, nats.RootCAs(cfg.TLS.CAFile))
		}

		opts = append(opts, nats.Secure(tlsConfig))
	}

	return opts, nil
}
