package domain

import (
	interfaces "diffimp/internal/domain/interfaces"
	types "diffimp/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	LayerClass              = types.LayerClass
	LayerKind               = types.LayerKind
	Position                = types.Position
	Layer                   = types.Layer
	Stackup                 = types.Stackup
	StackupRow              = types.StackupRow
	GeometryInput           = types.GeometryInput
	Geometry                = types.Geometry
	Regime                  = types.Regime
	CalculationResult       = types.CalculationResult
	InputValidationError    = types.InputValidationError
	StackupStructureError   = types.StackupStructureError
	ImportSizeMismatchError = types.ImportSizeMismatchError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	StackupStore       = interfaces.StackupStore
	StackupService     = interfaces.StackupService
	CalculationService = interfaces.CalculationService
)

// Enumerations re-exported alongside their types.
const (
	ClassSignal     = types.ClassSignal
	ClassPlane      = types.ClassPlane
	ClassSolderMask = types.ClassSolderMask
	ClassCore       = types.ClassCore
	ClassPrepreg    = types.ClassPrepreg

	KindCopper     = types.KindCopper
	KindDielectric = types.KindDielectric
	KindSolderMask = types.KindSolderMask

	PositionNone   = types.PositionNone
	PositionTop    = types.PositionTop
	PositionInner  = types.PositionInner
	PositionBottom = types.PositionBottom

	RegimeWide   = types.RegimeWide
	RegimeNarrow = types.RegimeNarrow
)

// Functions re-exported from the types subpackage.
var (
	ParseLayerClass        = types.ParseLayerClass
	ParseLayerKind         = types.ParseLayerKind
	IsSupportedCopperCount = types.IsSupportedCopperCount
	SupportedCopperCounts  = types.SupportedCopperCounts
)
