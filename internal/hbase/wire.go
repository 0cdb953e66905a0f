package hbase

// Hand-written wire structs for the four gateway methods the probe issues.
// Field ids and types follow the gateway's Thrift IDL; unknown fields are
// skipped so newer gateways remain readable.

import (
	"context"
	"errors"

	"github.com/apache/thrift/lib/go/thrift"
)

// errClientOnly marks the protocol direction a probe client never exercises:
// arguments are only written, results are only read.
var errClientOnly = errors.New("hbase: client-side codec")

// noArgs is the argument struct for calls that take no parameters.
type noArgs struct{}

func (a *noArgs) Write(ctx context.Context, p thrift.TProtocol) error {
	if err := p.WriteStructBegin(ctx, "args"); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}
	return p.WriteStructEnd(ctx)
}

func (a *noArgs) Read(ctx context.Context, p thrift.TProtocol) error {
	return errClientOnly
}

// tableArgs is the argument struct for calls taking a single table name at
// field id 1.
type tableArgs struct {
	Table string
}

func (a *tableArgs) Write(ctx context.Context, p thrift.TProtocol) error {
	if err := p.WriteStructBegin(ctx, "args"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin(ctx, "tableName", thrift.STRING, 1); err != nil {
		return err
	}
	if err := p.WriteString(ctx, a.Table); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}
	return p.WriteStructEnd(ctx)
}

func (a *tableArgs) Read(ctx context.Context, p thrift.TProtocol) error {
	return errClientOnly
}

// tableNamesResult decodes the getTableNames reply: success at field 0 is a
// list of table names, the declared IOError exception sits at field 1.
type tableNamesResult struct {
	Names []string
	IO    *IOError
}

func (r *tableNamesResult) Write(ctx context.Context, p thrift.TProtocol) error {
	return errClientOnly
}

func (r *tableNamesResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readResult(ctx, p, func(typeID thrift.TType) (bool, error) {
		if typeID != thrift.LIST {
			return false, nil
		}
		_, size, err := p.ReadListBegin(ctx)
		if err != nil {
			return false, err
		}
		r.Names = make([]string, 0, size)
		for i := 0; i < size; i++ {
			name, err := p.ReadString(ctx)
			if err != nil {
				return false, err
			}
			r.Names = append(r.Names, name)
		}
		return true, p.ReadListEnd(ctx)
	}, &r.IO)
}

// tableEnabledResult decodes the isTableEnabled reply. Success is a bool;
// the pointer distinguishes "false" from "field absent".
type tableEnabledResult struct {
	Enabled *bool
	IO      *IOError
}

func (r *tableEnabledResult) Write(ctx context.Context, p thrift.TProtocol) error {
	return errClientOnly
}

func (r *tableEnabledResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readResult(ctx, p, func(typeID thrift.TType) (bool, error) {
		if typeID != thrift.BOOL {
			return false, nil
		}
		v, err := p.ReadBool(ctx)
		if err != nil {
			return false, err
		}
		r.Enabled = &v
		return true, nil
	}, &r.IO)
}

// columnsResult decodes the getColumnDescriptors reply: a map from family
// name to descriptor struct.
type columnsResult struct {
	Columns map[string]ColumnDescriptor
	IO      *IOError
}

func (r *columnsResult) Write(ctx context.Context, p thrift.TProtocol) error {
	return errClientOnly
}

func (r *columnsResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readResult(ctx, p, func(typeID thrift.TType) (bool, error) {
		if typeID != thrift.MAP {
			return false, nil
		}
		_, _, size, err := p.ReadMapBegin(ctx)
		if err != nil {
			return false, err
		}
		r.Columns = make(map[string]ColumnDescriptor, size)
		for i := 0; i < size; i++ {
			key, err := p.ReadString(ctx)
			if err != nil {
				return false, err
			}
			var cd ColumnDescriptor
			if err := readColumnDescriptor(ctx, p, &cd); err != nil {
				return false, err
			}
			r.Columns[key] = cd
		}
		return true, p.ReadMapEnd(ctx)
	}, &r.IO)
}

// regionsResult decodes the getTableRegions reply: a list of region
// descriptors.
type regionsResult struct {
	Regions []RegionInfo
	IO      *IOError
}

func (r *regionsResult) Write(ctx context.Context, p thrift.TProtocol) error {
	return errClientOnly
}

func (r *regionsResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readResult(ctx, p, func(typeID thrift.TType) (bool, error) {
		if typeID != thrift.LIST {
			return false, nil
		}
		_, size, err := p.ReadListBegin(ctx)
		if err != nil {
			return false, err
		}
		r.Regions = make([]RegionInfo, 0, size)
		for i := 0; i < size; i++ {
			var ri RegionInfo
			if err := readRegionInfo(ctx, p, &ri); err != nil {
				return false, err
			}
			r.Regions = append(r.Regions, ri)
		}
		return true, p.ReadListEnd(ctx)
	}, &r.IO)
}

// readResult walks a method result struct. Field 0 is handed to success,
// which reports whether it consumed the field; field 1 is the declared
// IOError exception; anything else is skipped.
func readResult(ctx context.Context, p thrift.TProtocol, success func(thrift.TType) (bool, error), ioErr **IOError) error {
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, id, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		switch {
		case id == 0:
			consumed, err := success(typeID)
			if err != nil {
				return err
			}
			if !consumed {
				if err := p.Skip(ctx, typeID); err != nil {
					return err
				}
			}
		case id == 1 && typeID == thrift.STRUCT:
			e := new(IOError)
			if err := readIOError(ctx, p, e); err != nil {
				return err
			}
			*ioErr = e
		default:
			if err := p.Skip(ctx, typeID); err != nil {
				return err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return p.ReadStructEnd(ctx)
}

func readIOError(ctx context.Context, p thrift.TProtocol, e *IOError) error {
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, id, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		if id == 1 && typeID == thrift.STRING {
			if e.Message, err = p.ReadString(ctx); err != nil {
				return err
			}
		} else if err := p.Skip(ctx, typeID); err != nil {
			return err
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return p.ReadStructEnd(ctx)
}

// readColumnDescriptor decodes the attributes the probe reports; bloom
// vector sizing and block cache fields are skipped.
func readColumnDescriptor(ctx context.Context, p thrift.TProtocol, cd *ColumnDescriptor) error {
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, id, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		switch {
		case id == 1 && typeID == thrift.STRING:
			cd.Name, err = p.ReadString(ctx)
		case id == 2 && typeID == thrift.I32:
			cd.MaxVersions, err = p.ReadI32(ctx)
		case id == 3 && typeID == thrift.STRING:
			cd.Compression, err = p.ReadString(ctx)
		case id == 4 && typeID == thrift.BOOL:
			cd.InMemory, err = p.ReadBool(ctx)
		case id == 5 && typeID == thrift.STRING:
			cd.BloomFilter, err = p.ReadString(ctx)
		case id == 9 && typeID == thrift.I32:
			cd.TTL, err = p.ReadI32(ctx)
		default:
			err = p.Skip(ctx, typeID)
		}
		if err != nil {
			return err
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return p.ReadStructEnd(ctx)
}

func readRegionInfo(ctx context.Context, p thrift.TProtocol, ri *RegionInfo) error {
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, id, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		switch {
		case id == 1 && typeID == thrift.STRING:
			ri.StartKey, err = p.ReadBinary(ctx)
		case id == 2 && typeID == thrift.STRING:
			ri.EndKey, err = p.ReadBinary(ctx)
		case id == 3 && typeID == thrift.I64:
			ri.ID, err = p.ReadI64(ctx)
		case id == 4 && typeID == thrift.STRING:
			ri.Name, err = p.ReadString(ctx)
		case id == 5 && typeID == thrift.BYTE:
			ri.Version, err = p.ReadByte(ctx)
		case id == 6 && typeID == thrift.STRING:
			ri.ServerName, err = p.ReadString(ctx)
		case id == 7 && typeID == thrift.I32:
			ri.Port, err = p.ReadI32(ctx)
		default:
			err = p.Skip(ctx, typeID)
		}
		if err != nil {
			return err
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return p.ReadStructEnd(ctx)
}
