package main

// @title OpenElev API
// @version 1.0
// @description Elevation enrichment for CSV and GeoJSON point data, backed by the Open-Elevation lookup service
// @BasePath /
