package hbase

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/apache/thrift/lib/go/thrift"
	log "github.com/sirupsen/logrus"
)

// transportBufferSize matches the gateway's default frame-less buffered
// transport.
const transportBufferSize = 8192

var errMissingResult = errors.New("reply carried no result")

// Config carries the connection settings for Dial.
type Config struct {
	Host string
	Port int

	// Timeout bounds connection establishment and every socket operation.
	// The probe's watchdog uses the same budget.
	Timeout time.Duration
}

// thriftClient speaks the gateway's binary protocol over a single buffered
// TCP connection. The probe is strictly sequential, so the connection is
// never shared between goroutines.
type thriftClient struct {
	transport thrift.TTransport
	client    *thrift.TStandardClient
	target    string
}

var _ Client = (*thriftClient)(nil)

// Dial opens a buffered binary-protocol connection to the gateway. The
// returned error is a *CallError with OpConnect.
func Dial(cfg Config) (Client, error) {
	target := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conf := &thrift.TConfiguration{
		ConnectTimeout: cfg.Timeout,
		SocketTimeout:  cfg.Timeout,
	}
	transport := thrift.NewTBufferedTransport(thrift.NewTSocketConf(target, conf), transportBufferSize)
	if err := transport.Open(); err != nil {
		return nil, &CallError{Op: OpConnect, Target: target, Err: err}
	}
	log.Debugf("connected to gateway at %s", target)

	protocols := thrift.NewTBinaryProtocolFactoryConf(conf)
	return &thriftClient{
		transport: transport,
		client:    thrift.NewTStandardClient(protocols.GetProtocol(transport), protocols.GetProtocol(transport)),
		target:    target,
	}, nil
}

func (c *thriftClient) Close() error {
	return c.transport.Close()
}

func (c *thriftClient) ListTables(ctx context.Context) ([]string, error) {
	var res tableNamesResult
	if err := c.call(ctx, OpListTables, "", &noArgs{}, &res); err != nil {
		return nil, err
	}
	if res.IO != nil {
		return nil, c.callError(OpListTables, "", res.IO)
	}
	log.Debugf("gateway lists %d tables", len(res.Names))
	return res.Names, nil
}

func (c *thriftClient) IsTableEnabled(ctx context.Context, table string) (bool, error) {
	var res tableEnabledResult
	if err := c.call(ctx, OpIsTableEnabled, table, &tableArgs{Table: table}, &res); err != nil {
		return false, err
	}
	if res.IO != nil {
		return false, c.callError(OpIsTableEnabled, table, res.IO)
	}
	if res.Enabled == nil {
		return false, c.callError(OpIsTableEnabled, table, errMissingResult)
	}
	return *res.Enabled, nil
}

func (c *thriftClient) ColumnDescriptors(ctx context.Context, table string) (map[string]ColumnDescriptor, error) {
	var res columnsResult
	if err := c.call(ctx, OpColumnDescriptors, table, &tableArgs{Table: table}, &res); err != nil {
		return nil, err
	}
	if res.IO != nil {
		return nil, c.callError(OpColumnDescriptors, table, res.IO)
	}
	return res.Columns, nil
}

func (c *thriftClient) TableRegions(ctx context.Context, table string) ([]RegionInfo, error) {
	var res regionsResult
	if err := c.call(ctx, OpTableRegions, table, &tableArgs{Table: table}, &res); err != nil {
		return nil, err
	}
	if res.IO != nil {
		return nil, c.callError(OpTableRegions, table, res.IO)
	}
	return res.Regions, nil
}

func (c *thriftClient) call(ctx context.Context, op Op, table string, args, result thrift.TStruct) error {
	if table == "" {
		log.Debugf("calling %s on %s", op, c.target)
	} else {
		log.Debugf("calling %s for table %q on %s", op, table, c.target)
	}
	if _, err := c.client.Call(ctx, string(op), args, result); err != nil {
		return c.callError(op, table, err)
	}
	return nil
}

func (c *thriftClient) callError(op Op, table string, err error) *CallError {
	return &CallError{Op: op, Table: table, Target: c.target, Err: err}
}
